package quizController

import (
	"strconv"

	"quizmaster/models"
)

// Evaluation is the outcome of scoring one submission against a quiz's
// question set. Correct + Wrong + Unattempted always equals the question count.
type Evaluation struct {
	Correct     int
	Wrong       int
	Unattempted int
	Score       float64 // percentage, 0-100
	Responses   []models.UserResponse
}

// EvaluateSubmission scores answers (question id string -> selected 1-based
// option index) against questions. Questions absent from answers are recorded
// as unattempted with option -1. A quiz with zero questions scores 0.
func EvaluateSubmission(userID, quizID uint, questions []models.Question, answers map[string]int) Evaluation {
	ev := Evaluation{Responses: make([]models.UserResponse, 0, len(questions))}

	for _, q := range questions {
		selected, ok := answers[strconv.FormatUint(uint64(q.ID), 10)]
		option := -1
		switch {
		case !ok:
			ev.Unattempted++
		case selected == q.CorrectOptionID:
			ev.Correct++
			option = selected
		default:
			ev.Wrong++
			option = selected
		}

		ev.Responses = append(ev.Responses, models.UserResponse{
			UserID:         userID,
			QuizID:         quizID,
			QuestionID:     q.ID,
			OptionSelected: option,
		})
	}

	if n := len(questions); n > 0 {
		ev.Score = float64(ev.Correct) * 100 / float64(n)
	}
	return ev
}
