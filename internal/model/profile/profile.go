package profile

import "github.com/zhouzirui/museum-guide/backend/internal/model/quiz"

// Profile captures the visitor age group and the tone the guide should use.
type Profile struct {
	ID         string          `json:"id"`
	Label      string          `json:"label"`
	LabelEn    string          `json:"labelEn"`
	Casual     bool            `json:"casual"` // 반말
	Emoji      bool            `json:"emoji"`
	Simple     bool            `json:"simple"` // 쉬운 설명
	Difficulty quiz.Difficulty `json:"difficulty"`
}

// Seed provides the visitor groups offered at the start of every conversation.
func Seed() []Profile {
	return []Profile{
		{ID: "kid", Label: "어린이", LabelEn: "Kid", Casual: true, Emoji: true, Simple: true, Difficulty: quiz.DifficultyEasy},
		{ID: "elementary", Label: "초등학생", LabelEn: "Elementary student", Casual: true, Emoji: true, Simple: true, Difficulty: quiz.DifficultyEasy},
		{ID: "middle", Label: "중학생", LabelEn: "Middle school student", Emoji: true, Difficulty: quiz.DifficultyNormal},
		{ID: "high", Label: "고등학생", LabelEn: "High school student", Difficulty: quiz.DifficultyNormal},
		{ID: "adult", Label: "성인", LabelEn: "Adult", Difficulty: quiz.DifficultyHard},
	}
}
