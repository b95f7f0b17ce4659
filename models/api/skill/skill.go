package skillapimodels

import dbmodels "vacancies-backend/models/db"

type SkillView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func SkillConvert(list []dbmodels.Skill) []SkillView {
	result := make([]SkillView, 0, len(list))
	for _, rec := range list {
		result = append(result, SkillView{
			ID:   rec.ID,
			Name: rec.Name,
		})
	}
	return result
}
