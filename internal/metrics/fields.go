package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrPage = "page" // which archive page kind a crawl fetch targeted
	AttrKind = "kind" // parse failure taxonomy kind
)
