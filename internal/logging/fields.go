package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldPath       = "path"
	FieldPage       = "page"
	FieldTournament = "tournament"
	FieldTraveller  = "traveller"
	FieldRecord     = "record"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
