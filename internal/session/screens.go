package session

import (
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"quizbank/internal/bank"
	"quizbank/internal/exam"
)

func (s *Session) mainMenu() state {
	s.println()
	s.println(s.styles.heading.Render("Main menu"))
	s.println("1. Show all questions")
	s.println("2. Search questions by keyword")
	s.println("3. Show exam draft")
	s.println("4. Create exam file")
	s.println("5. Quit")
	choice, ok := s.prompt("Choose an option (1-5): ")
	if !ok {
		return stateQuit
	}
	switch choice {
	case "1":
		s.page = 1
		return stateList
	case "2":
		return stateSearch
	case "3":
		return stateDraft
	case "4":
		return stateFinalize
	case "5", "q", "quit":
		s.println("Goodbye!")
		return stateQuit
	default:
		s.println("Invalid option. Please try again.")
		return stateMain
	}
}

func (s *Session) listQuestions() state {
	if !s.reload() {
		return stateMain
	}
	if len(s.questions) == 0 {
		s.println()
		s.println("No valid questions found.")
		return stateMain
	}
	page, pages := bank.Page(s.questions, s.page, s.opts.PageSize)
	s.page = min(max(s.page, 1), pages)
	offset := (s.page - 1) * s.opts.PageSize

	s.println()
	s.printf("Available questions (%d added to the exam), page %d/%d:\n\n", s.draft.Len(), s.page, pages)
	for i, q := range page {
		marker := " "
		if s.draft.Contains(q.Title) {
			marker = "*"
		}
		s.printf("%s[%d] %s\n", marker, offset+i+1, q.Title)
	}
	s.println()
	s.println("Enter a question number to see its details.")
	s.println(`Enter "n" or "p" for the next or previous page, "draft" for the exam draft, 0 for the main menu.`)

	choice, ok := s.prompt("\nYour choice: ")
	if !ok {
		return stateQuit
	}
	switch strings.ToLower(choice) {
	case "0":
		return stateMain
	case "draft", "test":
		return stateDraft
	case "n":
		if s.page < pages {
			s.page++
		}
		return stateList
	case "p":
		if s.page > 1 {
			s.page--
		}
		return stateList
	}
	index, err := strconv.Atoi(choice)
	if err != nil || index < 1 || index > len(s.questions) {
		s.println("Invalid choice. Please try again.")
		return stateList
	}
	s.current = index - 1
	return stateDetail
}

func (s *Session) showDetail() state {
	if s.current < 0 || s.current >= len(s.questions) {
		return stateList
	}
	q := s.questions[s.current]
	s.println()
	s.println(s.styles.heading.Render("Question: " + q.Title))
	s.println("Text: " + q.Body)
	s.println("Type: " + q.Type.String())
	s.println()
	s.println("Choices:")
	for i, choice := range q.Choices {
		line := "[" + strconv.Itoa(i+1) + "] " + choice.Text
		if choice.Correct {
			line += " " + s.styles.correct.Render("(Correct)")
		}
		s.println(line)
	}
	s.println()
	s.println("1. Add this question to the exam")
	s.println("2. Back to the question list")
	s.println("3. Back to the main menu")

	choice, ok := s.prompt("\nYour choice: ")
	if !ok {
		return stateQuit
	}
	switch choice {
	case "1":
		s.add(q.Title)
		return stateList
	case "2":
		return stateList
	case "3":
		return stateMain
	default:
		s.println("Invalid choice. Please try again.")
		return stateDetail
	}
}

func (s *Session) add(title string) {
	q := s.questions[s.current]
	err := s.draft.Add(q)
	switch {
	case err == nil:
		s.logger.Info("question added", zap.String("title", title), zap.Int("draft_questions", s.draft.Len()))
		s.printf("\nQuestion %q added to the exam (%d in total).\n", title, s.draft.Len())
	case errors.Is(err, exam.ErrDuplicateTitle):
		s.printf("\nQuestion %q is already in the exam.\n", title)
	case errors.Is(err, exam.ErrDraftFull):
		s.printf("\nThe exam already holds %d questions.\n", s.draft.Len())
	default:
		s.println("\n" + s.styles.err.Render("Cannot add question: "+err.Error()))
	}
}

func (s *Session) showDraft() state {
	questions := s.draft.Questions()
	s.println()
	if len(questions) == 0 {
		s.println("No question has been added to the exam yet.")
	} else {
		s.printf("Questions in the exam (%d):\n\n", len(questions))
		for i, q := range questions {
			s.printf("[%d] %s\n", i+1, q.Title)
		}
	}
	s.println()
	s.println("1. Back to the question list")
	s.println("2. Finalize the exam")
	s.println("3. Back to the main menu")
	s.println(`Enter "r <number>" to remove a question.`)

	choice, ok := s.prompt("\nYour choice: ")
	if !ok {
		return stateQuit
	}
	switch {
	case choice == "1":
		s.page = 1
		return stateList
	case choice == "2":
		return stateFinalize
	case choice == "3":
		return stateMain
	case strings.HasPrefix(choice, "r "):
		index, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(choice, "r ")))
		if err != nil || index < 1 || index > len(questions) {
			s.println("Invalid question number.")
			return stateDraft
		}
		title := questions[index-1].Title
		s.draft.Remove(title)
		s.logger.Info("question removed", zap.String("title", title), zap.Int("draft_questions", s.draft.Len()))
		s.printf("Question %q removed from the exam.\n", title)
		return stateDraft
	default:
		s.println("Invalid choice. Please try again.")
		return stateDraft
	}
}

func (s *Session) finalize() state {
	if err := s.draft.Validate(); err != nil {
		limits := s.draft.Limits()
		switch {
		case errors.Is(err, exam.ErrTooFewQuestions):
			s.printf("\nThe exam must contain at least %d questions.\n", limits.Min)
		case errors.Is(err, exam.ErrTooManyQuestions):
			s.printf("\nThe exam cannot contain more than %d questions.\n", limits.Max)
		default:
			s.println("\n" + err.Error())
		}
		return stateDraft
	}
	if s.opts.Writer == nil {
		s.println(s.styles.err.Render("No exam directory configured."))
		return stateMain
	}
	name, ok := s.prompt("\nEnter a name for the exam file (without extension): ")
	if !ok {
		return stateQuit
	}
	path, err := s.draft.Finalize(s.opts.Writer, name)
	if err != nil {
		s.logger.Warn("finalize exam failed", zap.String("name", name), zap.Error(err))
		s.println(s.styles.err.Render("Cannot create exam: " + err.Error()))
		return stateDraft
	}
	s.printf("\nExam file %q created.\n", path)
	return stateMain
}

func (s *Session) search() state {
	keyword, ok := s.prompt("\nEnter a keyword to search questions: ")
	if !ok {
		return stateQuit
	}
	if !s.reload() {
		return stateMain
	}
	results := bank.Search(s.questions, keyword)
	if len(results) == 0 {
		s.println("No questions found.")
		return stateMain
	}
	s.printf("\nQuestions found for %q:\n\n", keyword)
	for i, q := range results {
		s.printf("[%d] %s - %s\n", i+1, q.Title, q.Body)
	}
	return stateMain
}
