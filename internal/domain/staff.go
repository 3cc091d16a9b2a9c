package domain

// Staff is a warehouse employee who handles orders.
type Staff struct {
	Document      `bson:",inline"`
	FirstName     string `json:"first_name" bson:"first_name"`
	LastName      string `json:"last_name" bson:"last_name"`
	EmployeeSince Date   `json:"employee_since" bson:"employee_since"`
	Age           int    `json:"age" bson:"age"`
}
