package dashboard

import "time"

// Stats is the headline card block on the admin dashboard
type Stats struct {
	TotalEvents    int64   `json:"total_events"`
	TotalUsers     int64   `json:"total_users"`
	TotalTickets   int64   `json:"total_tickets"`
	TotalPayments  int64   `json:"total_payments"`
	TotalRevenue   float64 `json:"total_revenue"` // completed payments only
	ActiveEvents   int64   `json:"active_events"`
	UpcomingEvents int64   `json:"upcoming_events"` // within the next 30 days
}

type CategoryCount struct {
	CategoryName string `json:"category_name"`
	Count        int64  `json:"count"`
}

type VenueCount struct {
	VenueName string `json:"venue_name"`
	Count     int64  `json:"count"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"` // "2026-08"
	Revenue float64 `json:"revenue"`
}

type DailyCount struct {
	Date  string `json:"date"` // "2026-08-31"
	Count int64  `json:"count"`
}

// Reports groups the date-ranged aggregate views
type Reports struct {
	EventsByCategory []CategoryCount  `json:"events_by_category"`
	EventsByVenue    []VenueCount     `json:"events_by_venue"`
	RevenueByMonth   []MonthlyRevenue `json:"revenue_by_month"`
	TicketSalesTrend []DailyCount     `json:"ticket_sales_trend"`
}

type TopEvent struct {
	EventID     uint   `json:"event_id"`
	EventName   string `json:"event_name"`
	TicketsSold int64  `json:"tickets_sold"`
}

type MethodBreakdown struct {
	PaymentMethod string  `json:"payment_method"`
	Count         int64   `json:"count"`
	Total         float64 `json:"total"`
}

// Analytics groups the ranking and trend views
type Analytics struct {
	TopEvents             []TopEvent        `json:"top_events"`
	TopVenues             []VenueCount      `json:"top_venues"`
	UserRegistrationTrend []DailyCount      `json:"user_registration_trend"`
	PaymentMethods        []MethodBreakdown `json:"payment_methods"`
}

// TicketSaleRow is one line of the exportable ticket sales report
type TicketSaleRow struct {
	TicketID      uint      `json:"ticket_id"`
	EventName     string    `json:"event_name"`
	Username      string    `json:"username"`
	PurchaseDate  time.Time `json:"purchase_date"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
}

// DateRange bounds reports and exports; zero values mean unbounded
type DateRange struct {
	From time.Time
	To   time.Time
}

// Export formats
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)
