package orderevents

const (
	TopicName       = "order"
	orderPlacedName = TopicName + ".placed"
)

type OrderPlaced struct {
	OrderUID      string
	ItemCount     int
	TotalAmount   string
	PaymentMethod string
}

func (e OrderPlaced) GetEventTypeName() string {
	return orderPlacedName
}

func (e OrderPlaced) GetAggregateName() string {
	return e.OrderUID
}
