package models

// DateLayout is the calendar-date format used across records and snapshots.
const DateLayout = "2006-01-02"

// DailyRecord captures one calendar day's farm activity. Records are
// append-only: once created they are never edited or removed.
type DailyRecord struct {
	ID                string  `json:"id" bson:"id"`
	Date              string  `json:"date" bson:"date"`
	EggsCollected     int     `json:"eggsCollected" bson:"eggsCollected"`
	EggsBroken        int     `json:"eggsBroken" bson:"eggsBroken"`
	EggsSpoilt        int     `json:"eggsSpoilt" bson:"eggsSpoilt"`
	EggsSold          int     `json:"eggsSold" bson:"eggsSold"`
	EggPrice          float64 `json:"eggPrice" bson:"eggPrice"`
	FowlDeaths        int     `json:"fowlDeaths" bson:"fowlDeaths"`
	NewHatches        int     `json:"newHatches" bson:"newHatches"`
	FeedConsumed      float64 `json:"feedConsumed" bson:"feedConsumed"`
	FeedCost          float64 `json:"feedCost" bson:"feedCost"`
	MedicationGiven   bool    `json:"medicationGiven" bson:"medicationGiven"`
	MedicationDetails string  `json:"medicationDetails" bson:"medicationDetails"`
	DisinfectionDone  bool    `json:"disinfectionDone" bson:"disinfectionDone"`
	DailyCheckNotes   string  `json:"dailyCheckNotes" bson:"dailyCheckNotes"`
}

// Revenue returns the sale proceeds of a single record.
func (r DailyRecord) Revenue() float64 {
	return float64(r.EggsSold) * r.EggPrice
}

// DailyRecordInput is the raw shape collected from forms. Numeric fields
// arrive as free-form text; the farm service coerces them, substituting 0
// for anything unparseable.
type DailyRecordInput struct {
	Date              string `json:"date"`
	EggsCollected     string `json:"eggsCollected"`
	EggsBroken        string `json:"eggsBroken"`
	EggsSpoilt        string `json:"eggsSpoilt"`
	EggsSold          string `json:"eggsSold"`
	EggPrice          string `json:"eggPrice"`
	FowlDeaths        string `json:"fowlDeaths"`
	NewHatches        string `json:"newHatches"`
	FeedConsumed      string `json:"feedConsumed"`
	FeedCost          string `json:"feedCost"`
	MedicationGiven   bool   `json:"medicationGiven"`
	MedicationDetails string `json:"medicationDetails"`
	DisinfectionDone  bool   `json:"disinfectionDone"`
	DailyCheckNotes   string `json:"dailyCheckNotes"`
}
