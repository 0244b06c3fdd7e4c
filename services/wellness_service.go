package services

import (
	"errors"
	"log"

	"backend/models"
	"backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultWaterGoal   = 8
	defaultMoodEmoji   = "🙂"
	defaultMoodLevel   = 3
	defaultEnergyLevel = 3
	defaultEnergyColor = "#FBBF24"
)

type WellnessService struct {
	db *gorm.DB
}

func NewWellnessService(db *gorm.DB) *WellnessService { return &WellnessService{db: db} }

// DefaultWellnessDoc builds the full default shape of a weekly wellness
// record: every weekday key present in the nested maps, gauges at neutral.
func DefaultWellnessDoc() models.WellnessDoc {
	doc := models.WellnessDoc{
		Mood:             &models.MoodState{Emoji: defaultMoodEmoji, Level: defaultMoodLevel},
		Energy:           &models.EnergyState{Level: defaultEnergyLevel, Color: defaultEnergyColor},
		Water:            &models.WaterState{Intake: 0, Goal: defaultWaterGoal},
		Sleep:            make(map[string]models.SleepEntry, len(utils.WeekdayKeys)),
		WeeklyLog:        make(map[string]models.DayLogEntry, len(utils.WeekdayKeys)),
		DailyNutrition:   map[string]models.DayNutrition{},
		DailySupplements: make(map[string][]string, len(utils.WeekdayKeys)),
	}
	for _, day := range utils.WeekdayKeys {
		doc.Sleep[day] = models.SleepEntry{}
		doc.WeeklyLog[day] = models.DayLogEntry{}
		doc.DailySupplements[day] = []string{}
	}
	return doc
}

// MergeWellnessDoc fills every field of the default from the remote document
// where present. The nested weekday maps and the mood/energy/water
// sub-objects are merged one level deeper, so a remote doc that has
// sleep.monday but no sleep.tuesday still ends up with the default tuesday.
// Pure function; neither input is mutated.
func MergeWellnessDoc(def, remote models.WellnessDoc) models.WellnessDoc {
	out := models.WellnessDoc{
		Mood:             mergeMood(def.Mood, remote.Mood),
		Energy:           mergeEnergy(def.Energy, remote.Energy),
		Water:            mergeWater(def.Water, remote.Water),
		Sleep:            mergeWeekMap(def.Sleep, remote.Sleep),
		WeeklyLog:        mergeWeekMap(def.WeeklyLog, remote.WeeklyLog),
		DailyNutrition:   mergeWeekMap(def.DailyNutrition, remote.DailyNutrition),
		DailySupplements: mergeWeekMap(def.DailySupplements, remote.DailySupplements),

		PregnancyStartDate: def.PregnancyStartDate,
		PregnancyEndDate:   def.PregnancyEndDate,
		DailyTip:           def.DailyTip,
	}
	if remote.PregnancyStartDate != "" {
		out.PregnancyStartDate = remote.PregnancyStartDate
	}
	if remote.PregnancyEndDate != "" {
		out.PregnancyEndDate = remote.PregnancyEndDate
	}
	if remote.DailyTip != "" {
		out.DailyTip = remote.DailyTip
	}
	return out
}

func mergeMood(def, remote *models.MoodState) *models.MoodState {
	if def == nil {
		def = &models.MoodState{}
	}
	out := *def
	if remote == nil {
		return &out
	}
	if remote.Emoji != "" {
		out.Emoji = remote.Emoji
	}
	if remote.Level != 0 {
		out.Level = remote.Level
	}
	if remote.Insight != "" {
		out.Insight = remote.Insight
	}
	return &out
}

func mergeEnergy(def, remote *models.EnergyState) *models.EnergyState {
	if def == nil {
		def = &models.EnergyState{}
	}
	out := *def
	if remote == nil {
		return &out
	}
	if remote.Level != 0 {
		out.Level = remote.Level
	}
	if remote.Color != "" {
		out.Color = remote.Color
	}
	return &out
}

func mergeWater(def, remote *models.WaterState) *models.WaterState {
	if def == nil {
		def = &models.WaterState{Goal: defaultWaterGoal}
	}
	out := *def
	if remote == nil {
		return &out
	}
	// Intake 0 is a real value once the water object exists remotely.
	out.Intake = remote.Intake
	if remote.Goal != 0 {
		out.Goal = remote.Goal
	}
	return &out
}

// mergeWeekMap overlays remote weekday entries on a copy of the defaults.
func mergeWeekMap[T any](def, remote map[string]T) map[string]T {
	out := make(map[string]T, len(def)+len(remote))
	for k, v := range def {
		out[k] = v
	}
	for k, v := range remote {
		out[k] = v
	}
	return out
}

// GetWeek returns the merged wellness document for (user, week), creating the
// row with the full default shape on first read. If that initial write fails
// the default is served in-memory for this request only; a concurrent writer
// racing an uninitialized read elsewhere can still lose data — see DESIGN.md.
func (s *WellnessService) GetWeek(userID uint, weekID string) (*models.WellnessWeek, models.WellnessDoc, error) {
	def := DefaultWellnessDoc()

	var row models.WellnessWeek
	err := s.db.Where("user_id = ? AND week_id = ?", userID, weekID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.WellnessWeek{UserID: userID, WeekID: weekID, Doc: datatypes.NewJSONType(def)}
		if cerr := s.db.Create(&row).Error; cerr != nil {
			log.Printf("wellness week init failed for user %d week %s: %v", userID, weekID, cerr)
		}
		return &row, def, nil
	}
	if err != nil {
		return nil, models.WellnessDoc{}, err
	}
	return &row, MergeWellnessDoc(def, row.Doc.Data()), nil
}

// save merges the mutated doc back onto the row. Writes always go through a
// merged view of the document, never a partial one.
func (s *WellnessService) save(row *models.WellnessWeek, doc models.WellnessDoc) (models.WellnessDoc, error) {
	row.Doc = datatypes.NewJSONType(doc)
	if err := s.db.Model(row).Update("doc", row.Doc).Error; err != nil {
		return doc, err
	}
	return doc, nil
}

func (s *WellnessService) UpdateMood(userID uint, weekID string, mood models.MoodState) (models.WellnessDoc, error) {
	row, doc, err := s.GetWeek(userID, weekID)
	if err != nil {
		return models.WellnessDoc{}, err
	}
	if mood.Emoji == "" && mood.Level == 0 && mood.Insight == "" {
		return doc, nil // nothing to write
	}
	doc.Mood = mergeMood(doc.Mood, &mood)
	return s.save(row, doc)
}

func (s *WellnessService) UpdateEnergy(userID uint, weekID string, energy models.EnergyState) (models.WellnessDoc, error) {
	row, doc, err := s.GetWeek(userID, weekID)
	if err != nil {
		return models.WellnessDoc{}, err
	}
	if energy.Level == 0 && energy.Color == "" {
		return doc, nil
	}
	doc.Energy = mergeEnergy(doc.Energy, &energy)
	return s.save(row, doc)
}

func (s *WellnessService) SetWater(userID uint, weekID string, intake, goal int) (models.WellnessDoc, error) {
	row, doc, err := s.GetWeek(userID, weekID)
	if err != nil {
		return models.WellnessDoc{}, err
	}
	if intake < 0 {
		intake = 0
	}
	w := *doc.Water
	w.Intake = intake
	if goal > 0 {
		w.Goal = goal
	}
	doc.Water = &w
	return s.save(row, doc)
}

func (s *WellnessService) SetSleepEntry(userID uint, weekID, weekday, sleepAt, wakeAt string) (models.WellnessDoc, error) {
	row, doc, err := s.GetWeek(userID, weekID)
	if err != nil {
		return models.WellnessDoc{}, err
	}
	if !utils.IsWeekdayKey(weekday) || (sleepAt == "" && wakeAt == "") {
		return doc, nil
	}
	doc.Sleep[weekday] = models.SleepEntry{Sleep: sleepAt, Wake: wakeAt}
	return s.save(row, doc)
}

func (s *WellnessService) LogDay(userID uint, weekID, weekday, mood, energy string) (models.WellnessDoc, error) {
	row, doc, err := s.GetWeek(userID, weekID)
	if err != nil {
		return models.WellnessDoc{}, err
	}
	if !utils.IsWeekdayKey(weekday) || (mood == "" && energy == "") {
		return doc, nil
	}
	doc.WeeklyLog[weekday] = models.DayLogEntry{Mood: mood, Energy: energy}
	return s.save(row, doc)
}

func (s *WellnessService) SetDailyTip(userID uint, weekID, tip string) (models.WellnessDoc, error) {
	row, doc, err := s.GetWeek(userID, weekID)
	if err != nil {
		return models.WellnessDoc{}, err
	}
	if tip == "" {
		return doc, nil
	}
	doc.DailyTip = tip
	return s.save(row, doc)
}

func (s *WellnessService) SetPregnancyDates(userID uint, weekID, start, end string) (models.WellnessDoc, error) {
	row, doc, err := s.GetWeek(userID, weekID)
	if err != nil {
		return models.WellnessDoc{}, err
	}
	if start == "" && end == "" {
		return doc, nil
	}
	if start != "" {
		doc.PregnancyStartDate = start
	}
	if end != "" {
		doc.PregnancyEndDate = end
	}
	return s.save(row, doc)
}

// ToggleSupplement adds name to the weekday's supplement log, or removes it
// when already present. A day with no prior log gets a fresh single-element
// list; other weekdays are untouched. Returns whether the supplement is now
// logged.
func (s *WellnessService) ToggleSupplement(userID uint, weekID, weekday, name string) (models.WellnessDoc, bool, error) {
	row, doc, err := s.GetWeek(userID, weekID)
	if err != nil {
		return models.WellnessDoc{}, false, err
	}
	if !utils.IsWeekdayKey(weekday) || name == "" {
		return doc, false, nil
	}

	day := doc.DailySupplements[weekday]
	next := make([]string, 0, len(day)+1)
	added := true
	for _, n := range day {
		if n == name {
			added = false
			continue
		}
		next = append(next, n)
	}
	if added {
		next = append(next, name)
	}
	doc.DailySupplements[weekday] = next

	doc, err = s.save(row, doc)
	return doc, added, err
}

// SetDayNutrition caches an AI verdict map for a weekday. Once present it
// overrides locally computed totals for that day (see nutrition_service.go).
func (s *WellnessService) SetDayNutrition(userID uint, weekID, weekday string, verdicts models.DayNutrition) (models.WellnessDoc, error) {
	row, doc, err := s.GetWeek(userID, weekID)
	if err != nil {
		return models.WellnessDoc{}, err
	}
	if !utils.IsWeekdayKey(weekday) || len(verdicts) == 0 {
		return doc, nil
	}
	doc.DailyNutrition[weekday] = verdicts
	return s.save(row, doc)
}
