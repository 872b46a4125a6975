// Package export renders a generated duty schedule to the two formats
// stakeholders actually consume it in: a color-coded spreadsheet and a
// calendar feed.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/666bes666/duty-schedule-gen/pkg/schedule"
)

// xlsxColors mirrors the fixed palette the duty roster has used since
// its spreadsheet export was a hand-maintained openpyxl script: green
// mornings, dark-blue evenings, turquoise nights, bright-blue workdays,
// orange days off, lilac vacation, dark-grey header.
var xlsxColors = map[string]string{
	"morning":  "00B050",
	"evening":  "003366",
	"night":    "00B0F0",
	"workday":  "0070C0",
	"day_off":  "FF6600",
	"vacation": "CC99FF",
	"header":   "404040",
	"date":     "E0E0E0",
}

var xlsxDarkBackgrounds = map[string]bool{
	"evening": true,
	"header":  true,
}

var xlsxHeaders = []string{
	"Date",
	"Morning\n08:00-17:00",
	"Evening\n15:00-00:00",
	"Night\n00:00-08:00",
	"Workday",
	"Day off",
}

var xlsxShiftColumns = []string{"morning", "evening", "night", "workday", "day_off"}

const xlsxSheetName = "Duty Roster"

// WriteXLSX renders sched as a single-sheet workbook: one header row,
// then one row per day with a column per shift class. Day-off cells
// that hold only vacationing employees are tinted with the vacation
// color instead of the day-off color, matching how the roster has
// always distinguished the two at a glance.
func WriteXLSX(w io.Writer, sched *schedule.Schedule) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(xlsxSheetName)
	if err != nil {
		return fmt.Errorf("export: new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if xlsxSheetName != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	styles, err := newXLSXStyles(f)
	if err != nil {
		return fmt.Errorf("export: build styles: %w", err)
	}

	if err := f.SetRowHeight(xlsxSheetName, 1, 32); err != nil {
		return fmt.Errorf("export: header row height: %w", err)
	}
	for i, header := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(xlsxSheetName, cell, header); err != nil {
			return fmt.Errorf("export: header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(xlsxSheetName, cell, cell, styles["header"]); err != nil {
			return fmt.Errorf("export: header style %s: %w", cell, err)
		}
	}

	for rowIdx, day := range sched.Days {
		row := rowIdx + 2

		dateCell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(xlsxSheetName, dateCell, formatXLSXDate(day)); err != nil {
			return fmt.Errorf("export: date cell %s: %w", dateCell, err)
		}
		dateStyle := styles["date"]
		if day.IsHoliday {
			dateStyle = styles["date_bold"]
		}
		if err := f.SetCellStyle(xlsxSheetName, dateCell, dateCell, dateStyle); err != nil {
			return fmt.Errorf("export: date style %s: %w", dateCell, err)
		}

		maxNames := 1
		for colIdx, shiftKey := range xlsxShiftColumns {
			names := namesForColumn(day, shiftKey)
			if n := len(names); n > maxNames {
				maxNames = n
			}
			cell, _ := excelize.CoordinatesToCellName(colIdx+2, row)
			if err := f.SetCellValue(xlsxSheetName, cell, strings.Join(names, "\n")); err != nil {
				return fmt.Errorf("export: cell %s: %w", cell, err)
			}
			colorKey := shiftKey
			if shiftKey == "day_off" && len(day.DayOff) == 0 && len(day.Vacation) > 0 {
				colorKey = "vacation"
			}
			style, ok := styles[colorKey]
			if !ok {
				style = styles["plain"]
			}
			if err := f.SetCellStyle(xlsxSheetName, cell, cell, style); err != nil {
				return fmt.Errorf("export: cell style %s: %w", cell, err)
			}
		}

		height := float64(maxNames) * 15.0
		if height < 20.0 {
			height = 20.0
		}
		if err := f.SetRowHeight(xlsxSheetName, row, height); err != nil {
			return fmt.Errorf("export: row height %d: %w", row, err)
		}
	}

	colWidths := []float64{14, 22, 22, 22, 22, 22}
	for i, width := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(xlsxSheetName, col, col, width); err != nil {
			return fmt.Errorf("export: column width %s: %w", col, err)
		}
	}

	if err := f.SetPanes(xlsxSheetName, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("export: freeze panes: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

func namesForColumn(day schedule.DaySchedule, shiftKey string) []string {
	switch shiftKey {
	case "morning":
		return day.Morning
	case "evening":
		return day.Evening
	case "night":
		return day.Night
	case "workday":
		return day.Workday
	case "day_off":
		return append(append([]string{}, day.DayOff...), day.Vacation...)
	default:
		return nil
	}
}

var weekdayNamesShort = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func formatXLSXDate(day schedule.DaySchedule) string {
	dow := int(day.Date.Weekday())
	if dow == 0 {
		dow = 7
	}
	marker := ""
	if day.IsHoliday {
		marker = " *"
	}
	return fmt.Sprintf("%d %s\n%s%s", day.Date.Day(), day.Date.Month().String()[:3], weekdayNamesShort[dow-1], marker)
}

func newXLSXStyles(f *excelize.File) (map[string]int, error) {
	styles := make(map[string]int)

	wrapCenter := &excelize.Alignment{WrapText: true, Vertical: "top", Horizontal: "center"}

	font := func(bold, white bool) *excelize.Font {
		color := "000000"
		if white {
			color = "FFFFFF"
		}
		return &excelize.Font{Bold: bold, Color: color, Family: "Calibri", Size: 11}
	}

	add := func(name, colorKey string, bold bool) error {
		white := xlsxDarkBackgrounds[colorKey]
		style, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{xlsxColors[colorKey]}, Pattern: 1},
			Font:      font(bold, white),
			Alignment: wrapCenter,
		})
		if err != nil {
			return err
		}
		styles[name] = style
		return nil
	}

	if err := add("header", "header", true); err != nil {
		return nil, err
	}
	if err := add("date", "date", false); err != nil {
		return nil, err
	}
	if err := add("date_bold", "date", true); err != nil {
		return nil, err
	}
	for _, key := range xlsxShiftColumns {
		if err := add(key, key, false); err != nil {
			return nil, err
		}
	}
	if err := add("vacation", "vacation", false); err != nil {
		return nil, err
	}

	plain, err := f.NewStyle(&excelize.Style{Alignment: wrapCenter})
	if err != nil {
		return nil, err
	}
	styles["plain"] = plain

	return styles, nil
}
