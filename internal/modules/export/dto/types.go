package dto

type ExportInput struct {
	Format string
}

type ExportOutput struct {
	Path    string
	Entries int
}
