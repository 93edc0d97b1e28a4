package event_bus

// CollectionChangedEvent is published by the store after every successful mutation.
const CollectionChangedEvent EventType = "store.collection.changed"

type Operation string

const (
	OperationAdded   Operation = "added"
	OperationUpdated Operation = "updated"
	OperationDeleted Operation = "deleted"
)

type CollectionChanged struct {
	// Collection is the plural collection name, e.g. "bills".
	Collection string
	Op         Operation
	// ID of the record that was added, updated or deleted.
	ID int
	// Size is the collection length right after the mutation. Events of concurrent
	// mutations may be delivered out of order, so Size can lag the current length.
	Size int
}
