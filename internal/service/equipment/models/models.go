package models

import (
	"encoding/json"
	"time"

	"github.com/fabworks/FabLab-BookingService/internal/domain"
	"github.com/fabworks/FabLab-BookingService/internal/parse"
)

// CreateRequest запрос на создание оборудования
// Списочные поля принимаются в нескольких исторических форматах
// (массив строк, строка с разделителями) и нормализуются при разборе
type CreateRequest struct {
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	Description        string          `json:"description"`
	Capacity           int             `json:"capacity"`
	BookingMinutes     int             `json:"booking_minutes"`
	Status             string          `json:"status"`
	KeyFeatures        json.RawMessage `json:"key_features"`
	TechSpecs          json.RawMessage `json:"tech_specs"`
	UsageGuidelines    json.RawMessage `json:"usage_guidelines"`
	SafetyRequirements json.RawMessage `json:"safety_requirements"`
}

// TechSpecResponse техническая характеристика в каноническом виде
type TechSpecResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EquipmentResponse модель оборудования для внешних потребителей
type EquipmentResponse struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name"`
	Category           string             `json:"category"`
	Description        string             `json:"description"`
	Capacity           int                `json:"capacity"`
	BookingMinutes     int                `json:"booking_minutes"`
	Status             string             `json:"status"`
	KeyFeatures        []string           `json:"key_features"`
	TechSpecs          []TechSpecResponse `json:"tech_specs"`
	UsageGuidelines    []string           `json:"usage_guidelines"`
	SafetyRequirements []string           `json:"safety_requirements"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// ToDomainEquipment конвертирует запрос в доменное оборудование,
// нормализуя списочные поля
func (r *CreateRequest) ToDomainEquipment() *domain.Equipment {
	return &domain.Equipment{
		Name:               r.Name,
		Category:           r.Category,
		Description:        r.Description,
		Capacity:           r.Capacity,
		BookingMinutes:     r.BookingMinutes,
		Status:             domain.EquipmentStatus(r.Status),
		KeyFeatures:        parse.ParseStringList(r.KeyFeatures),
		TechSpecs:          parse.ParseTechSpecs(r.TechSpecs),
		UsageGuidelines:    parse.ParseStringList(r.UsageGuidelines),
		SafetyRequirements: parse.ParseStringList(r.SafetyRequirements),
	}
}

// FromDomainEquipment конвертирует доменное оборудование в response
func FromDomainEquipment(e *domain.Equipment) *EquipmentResponse {
	specs := make([]TechSpecResponse, len(e.TechSpecs))
	for i, s := range e.TechSpecs {
		specs[i] = TechSpecResponse{Key: s.Key, Value: s.Value}
	}

	return &EquipmentResponse{
		ID:                 e.ID,
		Name:               e.Name,
		Category:           e.Category,
		Description:        e.Description,
		Capacity:           e.Capacity,
		BookingMinutes:     e.BookingMinutes,
		Status:             string(e.Status),
		KeyFeatures:        e.KeyFeatures,
		TechSpecs:          specs,
		UsageGuidelines:    e.UsageGuidelines,
		SafetyRequirements: e.SafetyRequirements,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// FromDomainEquipmentList конвертирует список доменного оборудования
func FromDomainEquipmentList(items []*domain.Equipment) []*EquipmentResponse {
	result := make([]*EquipmentResponse, len(items))
	for i, e := range items {
		result[i] = FromDomainEquipment(e)
	}
	return result
}
