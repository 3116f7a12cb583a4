package store

import "path/filepath"

// RecordExt is the file extension for raw record files.
const RecordExt = ".lin"

// RecordPath builds the path to one raw record, keyed the way the
// crawler lays files out: tournament type, tournament id, traveller id,
// record id.
func RecordPath(basePath, tournType, tournID, travellerID, recordID string) string {
	return filepath.Join(basePath, tournType, tournID, travellerID, recordID+RecordExt)
}
