package model

type EquipmentStats struct {
	Total        int
	InService    int
	Maintenance  int
	OutOfService int
}

type WorkOrderStats struct {
	Total      int
	Scheduled  int
	InProgress int
	Done       int
}

// RunHourSnapshot is the dashboard view of one hour-tracked equipment.
type RunHourSnapshot struct {
	EquipmentID  string
	Reference    string
	SerialNumber string
	RunHours     float64
	Status       EquipmentStatus
}

type DashboardStats struct {
	Equipment       EquipmentStats
	WorkOrders      WorkOrderStats
	LowStockCount   int
	TotalSpareParts int
	LowStockParts   []*SparePart
	RunHours        []RunHourSnapshot
}

// UpcomingWorkOrder decorates an open work order with its distance from
// today.
type UpcomingWorkOrder struct {
	WorkOrder *WorkOrder
	DaysUntil int
	IsOverdue bool
}
