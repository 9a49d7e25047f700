package extraction

// SpreadsheetReader turns an uploaded workbook into a raw cell grid.
// First sheet only; rows keep their original order so header detection can
// scan the leading title block.
type SpreadsheetReader interface {
	ReadGrid(data []byte) ([][]string, error)
}
