package model

// BackupVersion is the only persisted document revision in existence.
const BackupVersion = 1

// BackupData is the persisted/exported snapshot layout. Both the local
// state file, file exports and cloud backups carry exactly this document;
// import replaces both collections wholesale or not at all.
type BackupData struct {
	Version   int      `json:"version" validate:"eq=1"`
	Timestamp int64    `json:"timestamp" validate:"gt=0"`
	Events    []Event  `json:"events"`
	Tickets   []Ticket `json:"tickets"`
}
