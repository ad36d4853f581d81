// Package export writes contact listings to .xlsx workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"recruitcrm/internal/contact"
)

const sheetName = "Contacts"

// Header is the first row of the workbook, one column per contact
// field. Comments are exported in full, not preview-truncated.
var Header = []string{
	"ID",
	"Company",
	"Full Name",
	"Telegram",
	"Phone",
	"Position",
	"Email",
	"Status",
	"Last Contact",
	"Next Step",
	"Comments",
	"Resume Path",
	"Created At",
}

var columnWidths = []float64{
	6,  // ID
	18, // Company
	22, // Full Name
	16, // Telegram
	16, // Phone
	20, // Position
	26, // Email
	16, // Status
	14, // Last Contact
	14, // Next Step
	48, // Comments
	30, // Resume Path
	20, // Created At
}

// Write saves contacts as a workbook at path, one row per contact in
// the order given, with a styled frozen header row.
func Write(path string, contacts []contact.Contact) error {
	f, err := build(contacts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func build(contacts []contact.Contact) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for col, title := range Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("name header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			f.Close()
			return nil, fmt.Errorf("write header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("style header cell %s: %w", cell, err)
		}
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("name column: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	for i, c := range contacts {
		row := i + 2
		for col, value := range rowValues(c) {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("name cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	// Keep the header visible while scrolling.
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("freeze header row: %w", err)
	}

	return f, nil
}

func rowValues(c contact.Contact) []any {
	return []any{
		c.ID,
		c.Company,
		c.FullName,
		c.Telegram,
		c.Phone,
		c.Position,
		c.Email,
		c.Status,
		c.LastContact,
		c.NextStep,
		c.Comments,
		c.ResumePath,
		c.CreatedAt,
	}
}
