package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateEventRequest struct {
	ContactName    string  `json:"contact_name"    validate:"required,max=255"`
	ContactPhone   string  `json:"contact_phone"   validate:"required,max=20"`
	SecondaryPhone *string `json:"secondary_phone" validate:"omitempty,max=20"`
	Address        string  `json:"address"         validate:"required"`
	GoogleMapsURL  *string `json:"google_maps_url" validate:"omitempty,url"`
	Latitude       *decimal.Decimal `json:"latitude"`
	Longitude      *decimal.Decimal `json:"longitude"`

	EventDate string `json:"event_date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`

	PackageID          string           `json:"package_id" validate:"required,uuid"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`

	HasAdvancePayment    bool             `json:"has_advance_payment"`
	AdvancePaymentAmount *decimal.Decimal `json:"advance_payment_amount"`

	ExtraHoursCount   int              `json:"extra_hours_count" validate:"min=0"`
	ExtraTables       int              `json:"extra_tables"      validate:"min=0"`
	ExtraChairs       int              `json:"extra_chairs"      validate:"min=0"`
	ExtraPlaypens     int              `json:"extra_playpens"    validate:"min=0"`
	ExtraToys         int              `json:"extra_toys"        validate:"min=0"`
	ExtraServices     *string          `json:"extra_services"`
	ExtraServicesCost *decimal.Decimal `json:"extra_services_cost"`

	Status      string  `json:"status"       validate:"omitempty,oneof=pending confirmed in_progress completed cancelled"`
	Notes       *string `json:"notes"`
	ChildGender *string `json:"child_gender" validate:"omitempty,oneof=male female"`
}

// UpdateEventRequest uses pointers throughout: nil means "not submitted",
// so the service can merge over the stored row. The extras block counts as
// submitted when ANY of the count/services-cost fields is non-nil.
type UpdateEventRequest struct {
	ContactName    *string `json:"contact_name"    validate:"omitempty,max=255"`
	ContactPhone   *string `json:"contact_phone"   validate:"omitempty,max=20"`
	SecondaryPhone *string `json:"secondary_phone" validate:"omitempty,max=20"`
	Address        *string `json:"address"`
	GoogleMapsURL  *string `json:"google_maps_url" validate:"omitempty,url"`
	Latitude       *decimal.Decimal `json:"latitude"`
	Longitude      *decimal.Decimal `json:"longitude"`

	EventDate *string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"start_time"`

	PackageID          *string          `json:"package_id" validate:"omitempty,uuid"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`

	HasAdvancePayment    *bool            `json:"has_advance_payment"`
	AdvancePaymentAmount *decimal.Decimal `json:"advance_payment_amount"`

	ExtraHoursCount   *int             `json:"extra_hours_count" validate:"omitempty,min=0"`
	ExtraTables       *int             `json:"extra_tables"      validate:"omitempty,min=0"`
	ExtraChairs       *int             `json:"extra_chairs"      validate:"omitempty,min=0"`
	ExtraPlaypens     *int             `json:"extra_playpens"    validate:"omitempty,min=0"`
	ExtraToys         *int             `json:"extra_toys"        validate:"omitempty,min=0"`
	ExtraServices     *string          `json:"extra_services"`
	ExtraServicesCost *decimal.Decimal `json:"extra_services_cost"`

	Status      *string `json:"status"       validate:"omitempty,oneof=pending confirmed in_progress completed cancelled"`
	Notes       *string `json:"notes"`
	ChildGender *string `json:"child_gender" validate:"omitempty,oneof=male female"`
}

// HasExtras reports whether the request touches any extras-related field.
func (r *UpdateEventRequest) HasExtras() bool {
	return r.ExtraHoursCount != nil || r.ExtraTables != nil || r.ExtraChairs != nil ||
		r.ExtraPlaypens != nil || r.ExtraToys != nil || r.ExtraServicesCost != nil
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type EventFilter struct {
	Date      string `form:"date"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Status    string `form:"status"`
}

// ─── Calculation DTOs ────────────────────────────────────────────────────────

type ExtrasCostRequest struct {
	ExtraHoursCount   int             `json:"extra_hours_count" validate:"min=0"`
	ExtraTables       int             `json:"extra_tables"      validate:"min=0"`
	ExtraChairs       int             `json:"extra_chairs"      validate:"min=0"`
	ExtraPlaypens     int             `json:"extra_playpens"    validate:"min=0"`
	ExtraToys         int             `json:"extra_toys"        validate:"min=0"`
	ExtraServicesCost decimal.Decimal `json:"extra_services_cost"`
}

type ExtrasCostResponse struct {
	TablesCost      decimal.Decimal `json:"tables_cost"`
	ChairsCost      decimal.Decimal `json:"chairs_cost"`
	PlaypensCost    decimal.Decimal `json:"playpens_cost"`
	ToysCost        decimal.Decimal `json:"toys_cost"`
	TotalExtrasCost decimal.Decimal `json:"total_extras_cost"`
}

type EndTimeRequest struct {
	StartTime  string `json:"start_time" validate:"required"`
	ExtraHours int    `json:"extra_hours" validate:"min=0"`
}

type EndTimeResponse struct {
	EndTime string `json:"end_time"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EventPackageResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	MaxAge   *int            `json:"max_age"`
	IsActive bool            `json:"is_active"`
}

type EventResponse struct {
	ID             string  `json:"id"`
	ContactName    string  `json:"contact_name"`
	ContactPhone   string  `json:"contact_phone"`
	SecondaryPhone *string `json:"secondary_phone"`
	Address        string  `json:"address"`
	GoogleMapsURL  *string `json:"google_maps_url"`
	Latitude       *decimal.Decimal `json:"latitude"`
	Longitude      *decimal.Decimal `json:"longitude"`

	EventDate string `json:"event_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	PackageID             *string               `json:"package_id"`
	Package               *EventPackageResponse `json:"package"`
	DiscountPercentage    decimal.Decimal       `json:"discount_percentage"`
	PackageDiscountAmount decimal.Decimal       `json:"package_discount_amount"`

	HasAdvancePayment    bool             `json:"has_advance_payment"`
	AdvancePaymentAmount *decimal.Decimal `json:"advance_payment_amount"`
	AdvancePayment       decimal.Decimal  `json:"advance_payment"`

	ExtraHoursCount   int              `json:"extra_hours_count"`
	ExtraTables       int              `json:"extra_tables"`
	ExtraChairs       int              `json:"extra_chairs"`
	ExtraPlaypens     int              `json:"extra_playpens"`
	ExtraToys         int              `json:"extra_toys"`
	ExtraServices     *string          `json:"extra_services"`
	ExtraServicesCost decimal.Decimal  `json:"extra_services_cost"`

	ExtraHoursCost  decimal.Decimal `json:"extra_hours_cost"`
	TablesCost      decimal.Decimal `json:"tables_cost"`
	ChairsCost      decimal.Decimal `json:"chairs_cost"`
	PlaypensCost    decimal.Decimal `json:"playpens_cost"`
	ToysCost        decimal.Decimal `json:"toys_cost"`
	TotalExtrasCost decimal.Decimal `json:"total_extras_cost"`

	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
	ChildGender *string `json:"child_gender"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
