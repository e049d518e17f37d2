package inquiry

import (
	"fmt"
)

// Answer is the result of a submitted question. It is one of TextAnswer,
// ConfirmAnswer, OptionAnswer or OptionsAnswer.
type Answer interface {
	isAnswer()
}

// TextAnswer is the answer of a Text or Password question.
type TextAnswer string

// ConfirmAnswer is the answer of a Confirm question.
type ConfirmAnswer bool

// OptionAnswer is the answer of a Select question.
type OptionAnswer ListOption

// OptionsAnswer is the answer of a MultiSelect question, in list order.
type OptionsAnswer []ListOption

func (TextAnswer) isAnswer()    {}
func (ConfirmAnswer) isAnswer() {}
func (OptionAnswer) isAnswer()  {}
func (OptionsAnswer) isAnswer() {}

// Question is implemented by every prompt kind: it runs one question on the
// given renderer and produces its answer.
//
// Password, Text, Confirm, Select and MultiSelect all implement it, which
// lets AskAll run a mixed sequence on one terminal session. Every
// implementation shares the same loop:
//   - The frame is painted, then one key is read and applied
//   - Enter runs the validators; a rejection is shown and the loop goes on
//   - Esc or Ctrl+C returns ErrOperationCanceled and paints nothing more
//   - An accepted answer is painted through the formatter and left on screen
//
// Configuration errors, such as an empty option list or an invalid Confirm
// token, are reported before the first frame is painted.
type Question interface {
	AskWithRenderer(r *Renderer) (Answer, error)
}

// Ask runs q on the process terminal.
//
// Example:
//
//	answer, err := inquiry.Ask(inquiry.NewConfirm("Continue?").WithDefault(true))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if answer.(inquiry.ConfirmAnswer) {
//		// ...
//	}
func Ask(q Question, opts ...RendererOption) (Answer, error) {
	var answer Answer
	err := withTerminal(opts, func(r *Renderer) error {
		var err error
		answer, err = q.AskWithRenderer(r)
		return err
	})
	return answer, err
}

// AskAll runs the questions one after another on a single terminal session
// and returns their answers in order. It stops at the first error; the
// answers collected so far are returned with it.
func AskAll(questions []Question, opts ...RendererOption) ([]Answer, error) {
	var answers []Answer
	err := withTerminal(opts, func(r *Renderer) error {
		var err error
		answers, err = AskAllWithRenderer(r, questions)
		return err
	})
	return answers, err
}

// AskAllWithRenderer is AskAll on a caller supplied renderer. Raw mode is
// held for the whole sequence.
func AskAllWithRenderer(r *Renderer, questions []Question) (answers []Answer, err error) {
	release, err := r.enterRawMode()
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr := release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	answers = make([]Answer, 0, len(questions))
	for _, q := range questions {
		a, err := q.AskWithRenderer(r)
		if err != nil {
			return answers, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}

// withTerminal opens the process terminal, hands a renderer over it to fn
// and closes the terminal afterwards.
func withTerminal(opts []RendererOption, fn func(r *Renderer) error) (err error) {
	t, err := newRealTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", terminalError("open", err))
	}
	r := NewRenderer(t, append([]RendererOption{WithOutput(t.output)}, opts...)...)
	defer func() {
		if cerr := t.Close(); cerr != nil {
			r.logger.WithError(cerr).Warn("failed to close terminal")
			if err == nil {
				err = terminalError("close", cerr)
			}
		}
	}()
	return fn(r)
}

// stateMachine is the per-kind editing state driven by run.
type stateMachine[T any] interface {
	// render paints one frame of the live prompt.
	render(r *Renderer) error
	// onKey applies any key other than Submit and Cancel.
	onKey(k Key)
	// submit validates the current state and returns the answer.
	submit() (T, error)
	// setError records a rejected submit for the next frame.
	setError(message string)
	// final returns the message and formatted answer of the cleanup frame.
	final(value T) (message, formatted string)
}

// run is the render/input loop shared by all prompt kinds.
//
// Raw mode is held for the duration of the loop and released on every exit
// path. Validation failures stay inside the loop; cancellation returns
// ErrOperationCanceled without painting a cleanup frame.
func run[T any](r *Renderer, m stateMachine[T]) (answer T, err error) {
	release, err := r.enterRawMode()
	if err != nil {
		return answer, err
	}
	defer func() {
		if rerr := release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	for {
		if err := m.render(r); err != nil {
			return answer, err
		}

		key, err := r.ReadKey()
		if err != nil {
			return answer, err
		}

		switch key.Code {
		case KeyCancel:
			return answer, ErrOperationCanceled
		case KeySubmit:
			value, verr := m.submit()
			if verr != nil {
				m.setError(verr.Error())
				continue
			}
			message, formatted := m.final(value)
			if err := r.Cleanup(message, formatted); err != nil {
				return answer, err
			}
			return value, nil
		default:
			m.onKey(key)
		}
	}
}

// promptState is the part of the editing state every prompt kind shares.
type promptState struct {
	message string
	help    string
	errMsg  string // last validation failure, shown above the question
}

func (s *promptState) setError(message string) {
	s.errMsg = message
}

// beginFrame erases the previous frame and paints the error line, if any.
func (s *promptState) beginFrame(r *Renderer) error {
	if err := r.ResetPrompt(); err != nil {
		return err
	}
	if s.errMsg != "" {
		return r.PrintErrorMessage(s.errMsg)
	}
	return nil
}

// endFrame paints the help line, if any, and flushes the frame.
func (s *promptState) endFrame(r *Renderer) error {
	if s.help != "" {
		if err := r.PrintHelp(s.help); err != nil {
			return err
		}
	}
	return r.Flush()
}
