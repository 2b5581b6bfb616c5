package service

// Workbook is an encoded spreadsheet ready to be sent as an attachment.
type Workbook struct {
	Filename    string
	ContentType string
	Data        []byte
}
