package workflow

const (
	// Signal names
	RestockSignalName = "restock"
)

// RestockSignal notifies a running restock workflow that the product's
// stock was raised. The activity re-reads the database for the
// authoritative quantity.
type RestockSignal struct {
	Quantity int32 `json:"quantity"`
}
