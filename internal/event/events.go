package event

import "time"

type BillGeneratedEvent struct {
	BillID       int64     `json:"billId"`
	ConnectionID int64     `json:"connectionId"`
	FromDate     time.Time `json:"fromDate"`
	ToDate       time.Time `json:"toDate"`
	Amount       int64     `json:"amount"`
	Description  string    `json:"description"`
	Timestamp    time.Time `json:"timestamp"`
}

type PaymentRecordedEvent struct {
	PaymentID    int64     `json:"paymentId"`
	ConnectionID int64     `json:"connectionId"`
	EmployeeID   int64     `json:"employeeId"`
	Amount       int64     `json:"amount"`
	PaidAt       time.Time `json:"paidAt"`
	Timestamp    time.Time `json:"timestamp"`
}

type ConnectionStatusChangedEvent struct {
	ConnectionID int64     `json:"connectionId"`
	CustomerID   int64     `json:"customerId"`
	Active       bool      `json:"active"`
	Timestamp    time.Time `json:"timestamp"`
}

type CustomerOnboardedEvent struct {
	CustomerID     int64     `json:"customerId"`
	CustomerNumber string    `json:"customerNumber"`
	AreaID         int64     `json:"areaId"`
	ConnectionID   int64     `json:"connectionId"`
	Timestamp      time.Time `json:"timestamp"`
}
