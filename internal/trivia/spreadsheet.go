package trivia

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/trebekbot/trebekbot/internal/models"
	"github.com/trebekbot/trebekbot/pkg/errors"
	"github.com/trebekbot/trebekbot/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// Spreadsheet column layout. The first row of every sheet is a header.
const (
	colID = iota
	colCategory
	colQuestion
	colAnswer
	colValue
)

// Spreadsheet serves questions from an .xlsx workbook loaded at startup.
type Spreadsheet struct {
	questions []models.Question
	perSheet  map[string]int
	pick      func(n int) int
}

// LoadSpreadsheet reads every sheet of the workbook at path. Rows missing a
// question or an answer are skipped. A blank category takes the sheet name.
func LoadSpreadsheet(path string) (*Spreadsheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeValidation, "failed to open question workbook")
	}
	defer f.Close()

	s := &Spreadsheet{perSheet: make(map[string]int), pick: rand.Intn}
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeValidation, "failed to read sheet "+sheetName)
		}

		for i, row := range rows {
			if i == 0 {
				continue
			}
			question, ok := parseRow(row, sheetName)
			if !ok {
				logger.Debug("Skipping question row", "sheet", sheetName, "row", i+1)
				continue
			}
			s.questions = append(s.questions, question)
			s.perSheet[sheetName]++
		}
	}

	if len(s.questions) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, fmt.Sprintf("no questions found in %s", path))
	}
	return s, nil
}

func parseRow(row []string, sheetName string) (models.Question, bool) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	q := models.Question{
		Category: cell(colCategory),
		Prompt:   cell(colQuestion),
		Answer:   cell(colAnswer),
	}
	if q.Prompt == "" || q.Answer == "" {
		return q, false
	}
	if q.Category == "" {
		q.Category = sheetName
	}
	q.ID, _ = strconv.ParseInt(cell(colID), 10, 64)
	q.Value, _ = strconv.ParseInt(cell(colValue), 10, 64)
	return q, true
}

func (s *Spreadsheet) RandomQuestion(ctx context.Context) (*models.Question, error) {
	q := s.questions[s.pick(len(s.questions))]
	return &q, nil
}

// Len is the number of usable questions.
func (s *Spreadsheet) Len() int {
	return len(s.questions)
}

// SheetCounts maps each sheet name to its usable question count.
func (s *Spreadsheet) SheetCounts() map[string]int {
	counts := make(map[string]int, len(s.perSheet))
	for k, v := range s.perSheet {
		counts[k] = v
	}
	return counts
}
