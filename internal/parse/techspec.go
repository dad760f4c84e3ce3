// Package parse разбирает слабо типизированные поля карточки оборудования.
// Клиенты исторически присылают списки и характеристики в нескольких
// форматах, пакет приводит их к каноническому виду.
package parse

import (
	"encoding/json"
	"strings"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
)

// ParseStringList разбирает список строк из JSON-поля
// Принимает либо JSON-массив строк, либо одну строку: строка с переводами
// строк режется по ним, иначе по запятым. Пустые элементы отбрасываются
func ParseStringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return normalizeList(list)
	}

	var single string
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil
	}

	if strings.Contains(single, "\n") {
		return normalizeList(strings.Split(single, "\n"))
	}
	return normalizeList(strings.Split(single, ","))
}

// ParseTechSpecs разбирает технические характеристики из JSON-поля
// Принимает JSON-массив (строки вида "ключ: значение" либо объекты
// {key, value}), JSON-массив внутри строки, либо многострочный текст
// Элементы с пустым ключом отбрасываются
func ParseTechSpecs(raw json.RawMessage) []domain.TechSpec {
	if len(raw) == 0 {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		return specsFromItems(items)
	}

	var single string
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil
	}

	single = strings.TrimSpace(single)
	if single == "" {
		return nil
	}

	// Массив, упакованный в строку
	if strings.HasPrefix(single, "[") {
		if err := json.Unmarshal([]byte(single), &items); err == nil {
			return specsFromItems(items)
		}
	}

	specs := make([]domain.TechSpec, 0)
	for _, line := range strings.Split(single, "\n") {
		if spec, ok := specFromLine(line); ok {
			specs = append(specs, spec)
		}
	}
	return specs
}

// specsFromItems разбирает элементы массива характеристик
func specsFromItems(items []json.RawMessage) []domain.TechSpec {
	specs := make([]domain.TechSpec, 0, len(items))

	for _, item := range items {
		var line string
		if err := json.Unmarshal(item, &line); err == nil {
			if spec, ok := specFromLine(line); ok {
				specs = append(specs, spec)
			}
			continue
		}

		var obj struct {
			Key   string `json:"key"`
			Value string `json:"value"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			continue
		}
		if spec, ok := normalizeSpec(obj.Key, obj.Value); ok {
			specs = append(specs, spec)
		}
	}

	return specs
}

// specFromLine разбирает строку вида "ключ: значение"
func specFromLine(line string) (domain.TechSpec, bool) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return normalizeSpec(line, "")
	}
	return normalizeSpec(key, value)
}

// normalizeSpec обрезает пробелы и отбрасывает пустые ключи
func normalizeSpec(key, value string) (domain.TechSpec, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.TechSpec{}, false
	}
	return domain.TechSpec{Key: key, Value: strings.TrimSpace(value)}, true
}

// normalizeList обрезает пробелы и отбрасывает пустые элементы
func normalizeList(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
