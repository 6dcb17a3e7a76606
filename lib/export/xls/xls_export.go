package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	reqapimodels "recruit-flow-backend/models/api/requisition"
)

type Provider interface {
	ExportRequisitionList(list []reqapimodels.RequisitionView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var requisitionHeaders = []string{"Номер", "Позиция", "Подразделение", "Локация", "Тип", "Грейд", "Вилка", "Кол-во", "Статус", "Автор", "Дата создания"}

func (i impl) ExportRequisitionList(list []reqapimodels.RequisitionView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, requisitionHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeRequisitionData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Заявки")
	return f.WriteToBuffer()
}

func writeRequisitionData(f *excelize.File, sheet string, list []reqapimodels.RequisitionView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(requisitionHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Номер"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Number); err != nil {
			return row, err
		}

		// "Позиция"
		col++
		if err := writeColumn(f, sheet, col, row, item.PositionTitle); err != nil {
			return row, err
		}

		// "Подразделение"
		col++
		if err := writeColumn(f, sheet, col, row, item.Department); err != nil {
			return row, err
		}

		// "Локация"
		col++
		if err := writeColumn(f, sheet, col, row, item.Location); err != nil {
			return row, err
		}

		// "Тип"
		col++
		if err := writeColumn(f, sheet, col, row, item.ReqType.ToHuman()); err != nil {
			return row, err
		}

		// "Грейд"
		col++
		if err := writeColumn(f, sheet, col, row, item.GradeBand); err != nil {
			return row, err
		}

		// "Вилка"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v - %v", item.SalaryFrom, item.SalaryTo)); err != nil {
			return row, err
		}

		// "Кол-во"
		col++
		if err := writeColumn(f, sheet, col, row, item.OpenedPositions); err != nil {
			return row, err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.OverallStatus)); err != nil {
			return row, err
		}

		// "Автор"
		col++
		if err := writeColumn(f, sheet, col, row, item.AuthorFio); err != nil {
			return row, err
		}

		// "Дата создания"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreationDate.Format("02.01.2006")); err != nil {
			return row, err
		}
	}
	return row, nil
}
