package model

// DocumentSlot - Represents one used slot in a persisted state document.
// Empty slots are persisted as null and are hence not represented by this struct.
type DocumentSlot struct {
	Product   Product `json:"product"`
	IsDeleted bool    `json:"is_deleted"`
}

// Document - Represents the persisted state of a table.
// Count reflects the number of occupied slots and CollisionCount is preserved verbatim since it
// reflects historical insert time contention and is not recomputable from slot contents alone.
type Document struct {
	Size           int64           `json:"size"`
	Count          int64           `json:"count"`
	CollisionCount int64           `json:"collision_count"`
	CollisionLogs  []CollisionLog  `json:"collision_logs,omitempty"`
	Table          []*DocumentSlot `json:"table"`
}

// ProbeStep - Represents one step in a probing walk as recorded in a collision log
type ProbeStep struct {
	Attempt  int64  `json:"attempt"`
	Formula  string `json:"formula"`
	Position int64  `json:"position"`
	Status   string `json:"status"`
	HeldBy   string `json:"held_by,omitempty"`
}

// CalculationDetails - Represents the full hash calculation trace behind a collision log entry
type CalculationDetails struct {
	Key       string      `json:"key"`
	ByteSum   int64       `json:"byte_sum"`
	Size      int64       `json:"size"`
	R         int64       `json:"r"`
	H1        int64       `json:"h1"`
	H1Formula string      `json:"h1_formula"`
	H2        int64       `json:"h2"`
	H2Formula string      `json:"h2_formula"`
	Steps     []ProbeStep `json:"probe_steps"`
}

// CollisionLog - Represents one collision event, i.e. an operation that had to probe beyond its
// first slot before it could finish
type CollisionLog struct {
	Key            string             `json:"key"`
	Operation      string             `json:"operation"`
	ProbeSequence  []int64            `json:"probe_sequence"`
	CollisionCount int64              `json:"collision_count"`
	Resolution     string             `json:"resolution"`
	Details        CalculationDetails `json:"calculation_details"`
}
