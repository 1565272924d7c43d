package table

import (
	"github.com/zjrosen/signup/internal/registration"
)

func recordCell(extract func(registration.Record) string) func(any, string, int) string {
	return func(row any, _ string, _ int) string {
		return extract(row.(registration.Record))
	}
}

// RecordColumns returns the columns of the records table, in display order.
func RecordColumns() []ColumnConfig {
	return []ColumnConfig{
		{Key: "last_name", Header: "Last Name", MinWidth: 9, MaxWidth: 20, Priority: 2,
			Render: recordCell(func(r registration.Record) string { return r.LastName })},
		{Key: "first_name", Header: "First Name", MinWidth: 10, MaxWidth: 20, Priority: 2,
			Render: recordCell(func(r registration.Record) string { return r.FirstName })},
		{Key: "email", Header: "Email", MinWidth: 12, MaxWidth: 36, Priority: 3,
			Render: recordCell(func(r registration.Record) string { return r.Email })},
		{Key: "password", Header: "Password", MinWidth: 8, MaxWidth: 16, Priority: 1,
			Render: recordCell(func(r registration.Record) string { return r.Password })},
		{Key: "dob", Header: "Date of Birth", Width: 13,
			Render: recordCell(func(r registration.Record) string { return r.DateOfBirth })},
		{Key: "gender", Header: "Gender", Width: 6,
			Render: recordCell(func(r registration.Record) string { return r.Gender.String() })},
		{Key: "comments", Header: "Comments", MinWidth: 8,
			Render: recordCell(func(r registration.Record) string { return r.Comments })},
	}
}

// NewRecords creates the records table.
func NewRecords(maxRows int) Model {
	return New(Config{
		Columns:    RecordColumns(),
		ShowHeader: true,
		MaxRows:    maxRows,
	})
}

// RecordRows adapts a store snapshot to table rows.
func RecordRows(records []registration.Record) []any {
	rows := make([]any, len(records))
	for i, r := range records {
		rows[i] = r
	}
	return rows
}
