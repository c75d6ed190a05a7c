package checkoutevents

const (
	TopicName             = "checkout"
	checkoutCompletedName = TopicName + ".completed"
)

type CheckoutCompleted struct {
	OrderUID   string
	SessionUID string
	GrandTotal string
}

func (e CheckoutCompleted) GetEventTypeName() string {
	return checkoutCompletedName
}

func (e CheckoutCompleted) GetAggregateName() string {
	return e.OrderUID
}
