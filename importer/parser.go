package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column headers expected in the uploaded workbook. Exact match, as produced
// by the registration template handed to administrators.
const (
	ColFullName         = "Họ tên"
	ColEmail            = "Email"
	ColPhone            = "Số điện thoại"
	ColDateOfBirth      = "Ngày sinh"
	ColGender           = "Giới tính"
	ColDistance         = "Cự ly"
	ColNationalID       = "CCCD"
	ColAddress          = "Địa chỉ"
	ColCity             = "Thành phố"
	ColEmergencyContact = "Người liên hệ khẩn cấp"
	ColEmergencyPhone   = "SĐT khẩn cấp"
	ColBloodType        = "Nhóm máu"
	ColShirtCategory    = "Loại áo"
	ColShirtType        = "Kiểu áo"
	ColShirtSize        = "Size áo"
	ColBibNumber        = "Số BIB"
)

// Row is one data row of the uploaded sheet. Number is the display row in
// the file (the header is row 1, so the first data row is 2), which is what
// administrators see in Excel and what error records must reference.
type Row struct {
	Number int
	Cells  map[string]string
}

// ParseWorkbook reads the first sheet of an xlsx workbook into ordered rows
// keyed by the header row. It returns ErrMalformedFile when the bytes are not
// a spreadsheet or the sheet has no header; empty rows are skipped but never
// renumbered.
func ParseWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformedFile)
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrMalformedFile, sheets[0])
	}

	header := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		header[i] = strings.TrimSpace(h)
	}

	var rows []Row
	for i, cells := range raw[1:] {
		row := Row{
			Number: i + 2, // header occupies display row 1
			Cells:  make(map[string]string, len(header)),
		}
		empty := true
		for j, name := range header {
			if name == "" {
				continue
			}
			var value string
			if j < len(cells) {
				value = strings.TrimSpace(cells[j])
			}
			if value != "" {
				empty = false
			}
			row.Cells[name] = value
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
