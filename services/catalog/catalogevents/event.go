package catalogevents

const (
	TopicName           = "catalog"
	catalogReplacedName = TopicName + ".replaced"
)

type CatalogReplaced struct {
	Count int
}

func (e CatalogReplaced) GetEventTypeName() string {
	return catalogReplacedName
}

func (e CatalogReplaced) GetAggregateName() string {
	return TopicName
}
