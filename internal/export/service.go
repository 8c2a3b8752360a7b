// Package export renders a batch of order records as an XLSX workbook, a
// local mirror of what the aggregation sheet receives.
package export

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/johnnybahia/marcasceara/internal/entity"
)

const sheetName = "Pedidos"

var headers = []string{
	"Emissão",
	"Entrega",
	"Ordem de Compra",
	"Cliente",
	"Marca",
	"Local",
	"Qtd",
	"Unidade",
	"Valor",
	"Elástico",
	"Arquivo",
}

// Service builds XLSX bytes from extracted records.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// BuildWorkbook returns an XLSX workbook (as bytes) with one row per record.
func (s *Service) BuildWorkbook(records []entity.OrderRecord) ([]byte, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheetName, cell, v)
	}

	for i, h := range headers {
		write(i+1, 1, h)
	}
	for i, r := range records {
		row := i + 2
		write(1, row, r.ReceivedDate)
		write(2, row, r.OrderDate)
		write(3, row, r.OrderNumber)
		write(4, row, r.Client)
		write(5, row, r.Brand)
		write(6, row, r.Location)
		write(7, row, r.Quantity)
		write(8, row, string(r.Unit))
		write(9, row, r.Value)
		write(10, row, r.Elastic)
		write(11, row, r.SourceFile)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	s.logger.Debug("export.workbook", "records", len(records), "bytes", buf.Len())
	return buf.Bytes(), nil
}
