package interfaces

// EventPublisher fans a calculation event out to an external broker.
type EventPublisher interface {
	Publish(topic string, event any) error
}
