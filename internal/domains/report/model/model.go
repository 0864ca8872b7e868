package model

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	ExportDirectory = "reports"
	SheetName       = "Reservas"
)

// Header is the column order shared by every export format.
var Header = []string{"room_id", "room_name", "total", "pending", "approved", "rejected", "cancelled"}

// Row is the reservation tally of one room.
type Row struct {
	RoomID    string `json:"room_id"`
	RoomName  string `json:"room_name"`
	Total     int    `json:"total"`
	Pending   int    `json:"pending"`
	Approved  int    `json:"approved"`
	Rejected  int    `json:"rejected"`
	Cancelled int    `json:"cancelled"`
}

func (r Row) Values() []any {
	return []any{r.RoomID, r.RoomName, r.Total, r.Pending, r.Approved, r.Rejected, r.Cancelled}
}
