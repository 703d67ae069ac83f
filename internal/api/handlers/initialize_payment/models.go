package initialize_payment

import (
	"strings"
	"time"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	initializePayment "github.com/m04kA/Fairway-BookingService/internal/usecase/initialize_payment"
	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// InitializePaymentRequest HTTP request model
// Мастер бронирования присылает поля в двух вариантах названий, поддерживаются оба
type InitializePaymentRequest struct {
	BookingDate string `json:"booking_date"`
	Date        string `json:"date"`

	StartTime string `json:"start_time"`
	TimeSlot  string `json:"timeSlot"`

	DurationHours float64 `json:"duration_hours"`
	Duration      float64 `json:"duration"`

	PlayerCount int `json:"player_count"`
	Players     int `json:"players"`

	SessionType        string  `json:"session_type"`
	SessionTypeAlt     string  `json:"sessionType"`
	FamousCourseOption *string `json:"famous_course_option,omitempty"`

	BasePrice     float64 `json:"base_price"`
	TotalPrice    float64 `json:"total_price"`
	TotalPriceAlt float64 `json:"totalPrice"`

	GuestName     *string `json:"guest_name,omitempty"`
	CustomerName  *string `json:"customerName,omitempty"`
	GuestEmail    *string `json:"guest_email,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	GuestPhone    *string `json:"guest_phone,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`

	AcceptWhatsapp   bool    `json:"accept_whatsapp"`
	EnterCompetition bool    `json:"enter_competition"`
	CouponCode       *string `json:"coupon_code,omitempty"`
	SpecialRequests  *string `json:"special_requests,omitempty"`
	PayFullAmount    bool    `json:"pay_full_amount"`
}

// InitializePaymentResponse HTTP response model
// redirectUrl дублирует redirect_url для клиентов, читающих camelCase
type InitializePaymentResponse struct {
	BookingID          string   `json:"booking_id"`
	AssignedBay        int      `json:"assigned_bay"`
	FreeBooking        bool     `json:"free_booking,omitempty"`
	Message            string   `json:"message,omitempty"`
	RedirectURL        string   `json:"redirect_url,omitempty"`
	RedirectURLCamel   string   `json:"redirectUrl,omitempty"`
	AmountDue          *float64 `json:"amount_due,omitempty"`
	OutstandingBalance *float64 `json:"outstanding_balance,omitempty"`
}

// ToUseCaseRequest нормализует запрос и конвертирует в модель use case
func (r *InitializePaymentRequest) ToUseCaseRequest() (*initializePayment.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, firstString(r.BookingDate, r.Date))
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(firstString(r.StartTime, r.TimeSlot))
	if err != nil {
		return nil, err
	}

	totalPrice := firstNumber(r.TotalPrice, r.TotalPriceAlt)
	// без базовой цены скидка купона считается от итоговой
	basePrice := firstNumber(r.BasePrice, totalPrice)

	famousCourse := r.FamousCourseOption
	if famousCourse == nil && r.SessionTypeAlt != "" {
		option := r.SessionTypeAlt
		famousCourse = &option
	}

	return &initializePayment.Request{
		Date:               bookingDate,
		StartTime:          startTime,
		DurationHours:      firstNumber(r.DurationHours, r.Duration),
		PlayerCount:        firstInt(r.PlayerCount, r.Players),
		SessionType:        firstString(r.SessionType, r.SessionTypeAlt),
		FamousCourseOption: famousCourse,
		BasePrice:          basePrice,
		TotalPrice:         totalPrice,
		GuestName:          firstPtr(r.GuestName, r.CustomerName),
		GuestEmail:         firstPtr(r.GuestEmail, r.CustomerEmail),
		GuestPhone:         firstPtr(r.GuestPhone, r.CustomerPhone),
		AcceptWhatsapp:     r.AcceptWhatsapp,
		EnterCompetition:   r.EnterCompetition,
		CouponCode:         r.CouponCode,
		SpecialRequests:    r.SpecialRequests,
		PayFullAmount:      r.PayFullAmount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *initializePayment.Response) *InitializePaymentResponse {
	out := &InitializePaymentResponse{
		BookingID:   resp.BookingID.String(),
		AssignedBay: resp.BayID,
		FreeBooking: resp.FreeBooking,
		Message:     resp.Message,
		RedirectURL: resp.RedirectURL,
	}
	out.RedirectURLCamel = out.RedirectURL
	if !resp.FreeBooking {
		due, outstanding := resp.AmountDue, resp.Outstanding
		out.AmountDue = &due
		out.OutstandingBalance = &outstanding
	}
	return out
}

func firstString(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func firstNumber(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstPtr(values ...*string) *string {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			return v
		}
	}
	return nil
}
