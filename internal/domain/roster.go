package domain

// roster статичный список врачей. Не редактируется в рантайме,
// поэтому моделируется как неизменяемая таблица, а не реестр.
var roster = []Doctor{
	{ID: 1, Name: "Dr. Alice (Day Shift)", Shift: ShiftWeekdayDay},
	{ID: 2, Name: "Dr. Bob (Day Shift)", Shift: ShiftWeekdayDay},
	{ID: 3, Name: "Dr. Charlie (Day Shift)", Shift: ShiftWeekdayDay},
	{ID: 4, Name: "Dr. Diana (Evening/Weekend)", Shift: ShiftEveningWeekend},
	{ID: 5, Name: "Dr. Evan (Evening/Weekend)", Shift: ShiftEveningWeekend},
}

// Roster returns a copy of the full doctor roster in display order
func Roster() []Doctor {
	out := make([]Doctor, len(roster))
	copy(out, roster)
	return out
}

// DoctorByID looks up a roster entry by its ID
func DoctorByID(id int64) (Doctor, bool) {
	for _, d := range roster {
		if d.ID == id {
			return d, true
		}
	}
	return Doctor{}, false
}
