package address

// Address is an owned value embedded by users and restaurants.
type Address struct {
	Street       string
	Number       *int
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
}
