package jsonfile

import (
	"os"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository/seed"
)

// practiceDoc is the on-disk shape of practice_problems.json: the problem
// catalog split by platform plus per-user completion lists.
type practiceDoc struct {
	LeetCode          []model.PracticeProblem `json:"leetcode"`
	HackerRank        []model.PracticeProblem `json:"hackerrank"`
	CompletedProblems map[string][]string     `json:"completed_problems"`
}

func defaultPracticeDoc() practiceDoc {
	doc := practiceDoc{CompletedProblems: map[string][]string{}}
	for _, p := range seed.PracticeProblems() {
		if p.Platform == model.PlatformHackerRank {
			doc.HackerRank = append(doc.HackerRank, p)
		} else {
			doc.LeetCode = append(doc.LeetCode, p)
		}
	}
	return doc
}

func (s *Store) readPractice() practiceDoc {
	var doc practiceDoc
	if err := s.readJSON(practiceFile, &doc); err != nil {
		if os.IsNotExist(err) {
			doc = defaultPracticeDoc()
			s.writeJSON(practiceFile, doc)
			return doc
		}
		return practiceDoc{CompletedProblems: map[string][]string{}}
	}
	if doc.CompletedProblems == nil {
		doc.CompletedProblems = map[string][]string{}
	}
	return doc
}

// PracticeProblems returns the full catalog across platforms.
func (s *Store) PracticeProblems() []model.PracticeProblem {
	doc := s.readPractice()
	problems := make([]model.PracticeProblem, 0, len(doc.LeetCode)+len(doc.HackerRank))
	problems = append(problems, doc.LeetCode...)
	problems = append(problems, doc.HackerRank...)
	return problems
}

// CompletedProblems returns the user's solved-problem ids.
func (s *Store) CompletedProblems(username string) []string {
	ids := s.readPractice().CompletedProblems[username]
	if ids == nil {
		return []string{}
	}
	return ids
}

// MarkProblemCompleted records the problem for the user exactly once.
func (s *Store) MarkProblemCompleted(username, problemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.readPractice()
	for _, id := range doc.CompletedProblems[username] {
		if id == problemID {
			return nil
		}
	}
	doc.CompletedProblems[username] = append(doc.CompletedProblems[username], problemID)
	return s.writeJSON(practiceFile, doc)
}

// UnmarkProblemCompleted removes the problem from the user's solved list.
func (s *Store) UnmarkProblemCompleted(username, problemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.readPractice()
	ids := doc.CompletedProblems[username]
	for i, id := range ids {
		if id == problemID {
			doc.CompletedProblems[username] = append(ids[:i], ids[i+1:]...)
			return s.writeJSON(practiceFile, doc)
		}
	}
	return nil
}
