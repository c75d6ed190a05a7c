package myuuid

//go:generate mockgen -source=api.go -package myuuid -destination uuider_mock.go UUIDer
type UUIDer interface {
	Create() string
	// CreateShortRef returns a short human-shareable reference,
	// drawn from a space large enough to make collisions negligible.
	CreateShortRef() string
}
