package service

import (
	"context"

	"backend/internal/model"
	"backend/internal/repository"
)

// ShipmentResponse is one shipment record as returned to the dashboard.
type ShipmentResponse struct {
	ID                   string `json:"id"`
	IdentityKey          string `json:"identity_key"`
	ExporterName         string `json:"exporter_name"`
	ConsigneeName        string `json:"consignee_name"`
	ProductDescription   string `json:"product_description"`
	Category             string `json:"category"`
	HsCode               string `json:"hs_code"`
	Quantity             string `json:"quantity"`
	Unit                 string `json:"unit"`
	FobValue             string `json:"fob_value"`
	Currency             string `json:"currency"`
	PortOfLoading        string `json:"port_of_loading"`
	PortOfDischarge      string `json:"port_of_discharge"`
	CountryOfDestination string `json:"country_of_destination"`
	ShipmentDate         string `json:"shipment_date,omitempty"`
	MonthYear            string `json:"month_year,omitempty"`
	BatchTag             string `json:"batch_tag"`
}

type ShipmentService interface {
	List(ctx context.Context, f repository.ShipmentFilter, page, limit int) ([]ShipmentResponse, int64, error)
}

type shipmentService struct {
	repo repository.ShipmentRepository
}

func NewShipmentService(repo repository.ShipmentRepository) ShipmentService {
	return &shipmentService{repo: repo}
}

func (s *shipmentService) List(ctx context.Context, f repository.ShipmentFilter, page, limit int) ([]ShipmentResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	records, total, err := s.repo.List(ctx, f, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]ShipmentResponse, 0, len(records))
	for _, r := range records {
		res = append(res, mapShipment(r))
	}
	return res, total, nil
}

func mapShipment(r model.ShipmentRecord) ShipmentResponse {
	resp := ShipmentResponse{
		ID:                   r.ID.String(),
		IdentityKey:          r.IdentityKey,
		ExporterName:         r.ExporterName,
		ConsigneeName:        r.ConsigneeName,
		ProductDescription:   r.ProductDescription,
		Category:             r.Category,
		HsCode:               r.HsCode,
		Quantity:             r.Quantity.String(),
		Unit:                 r.Unit,
		FobValue:             r.FobValue.String(),
		Currency:             r.Currency,
		PortOfLoading:        r.PortOfLoading,
		PortOfDischarge:      r.PortOfDischarge,
		CountryOfDestination: r.CountryOfDestination,
		BatchTag:             r.BatchTag,
	}
	if r.ShipmentDate != nil {
		resp.ShipmentDate = r.ShipmentDate.Format("2006-01-02")
	}
	if r.MonthYear != nil {
		resp.MonthYear = *r.MonthYear
	}
	return resp
}
