package records

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/diillson/credit-review-dashboard-go/internal/domain/entity"
	"github.com/diillson/credit-review-dashboard-go/internal/domain/repository"
)

// RecordRepositoryImpl implementa o RecordRepository sobre arquivos locais.
type RecordRepositoryImpl struct{}

// NewRecordRepository cria uma nova implementação do RecordRepository.
func NewRecordRepository() repository.RecordRepository {
	return &RecordRepositoryImpl{}
}

// LoadRecords carrega um conjunto de registros de utilização de um arquivo
// CSV ou JSON, escolhido pela extensão.
func (r *RecordRepositoryImpl) LoadRecords(ctx context.Context, path string) ([]entity.UtilizationRecord, error) {
	fileExtension := strings.ToLower(filepath.Ext(path))

	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing records file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening records file: %w", err)
	}
	defer file.Close()

	switch fileExtension {
	case ".csv":
		return parseCSV(file)
	case ".json":
		return parseJSON(file)
	default:
		return nil, fmt.Errorf("unsupported records file format: %s", fileExtension)
	}
}

// Colunas esperadas no CSV, na ordem. Colunas opcionais podem ficar vazias.
var csvHeader = []string{
	"account_number", "authorization_number",
	"authorized_amount", "used_amount", "overage_amount",
	"currency_code", "product_name", "product_family",
}

func parseCSV(reader io.Reader) ([]entity.UtilizationRecord, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = len(csvHeader)

	header, err := csvReader.Read()
	if err == io.EOF {
		return []entity.UtilizationRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	for i, name := range csvHeader {
		if strings.TrimSpace(header[i]) != name {
			return nil, fmt.Errorf("unexpected CSV column %d: got %q, want %q", i, header[i], name)
		}
	}

	records := []entity.UtilizationRecord{}
	line := 1
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV line %d: %w", line+1, err)
		}
		line++

		authorized, err := parseAmount(row[2], "authorized_amount", line)
		if err != nil {
			return nil, err
		}
		used, err := parseAmount(row[3], "used_amount", line)
		if err != nil {
			return nil, err
		}
		overage, err := parseAmount(row[4], "overage_amount", line)
		if err != nil {
			return nil, err
		}

		records = append(records, entity.UtilizationRecord{
			AccountNumber:       strings.TrimSpace(row[0]),
			AuthorizationNumber: strings.TrimSpace(row[1]),
			AuthorizedAmount:    authorized,
			UsedAmount:          used,
			OverageAmount:       overage,
			CurrencyCode:        strings.TrimSpace(row[5]),
			ProductName:         strings.TrimSpace(row[6]),
			ProductFamily:       strings.TrimSpace(row[7]),
		})
	}

	return records, nil
}

func parseJSON(reader io.Reader) ([]entity.UtilizationRecord, error) {
	var records []entity.UtilizationRecord
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("error parsing JSON records: %w", err)
	}
	if records == nil {
		records = []entity.UtilizationRecord{}
	}
	return records, nil
}

func parseAmount(value, column string, line int) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s on CSV line %d: %q", column, line, value)
	}
	return amount, nil
}
