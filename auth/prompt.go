package auth

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/mo"
)

type promptAnswers struct {
	Username string
	Password string
}

// Prompt asks for a username and password on the terminal.
type Prompt struct {
	// Ask defaults to survey.Ask.
	Ask func(qs []*survey.Question, response interface{}, opts ...survey.AskOpt) error
}

func (Prompt) Name() string { return "prompt" }

func (p Prompt) Provide() (mo.Option[Credentials], error) {
	ask := p.Ask
	if ask == nil {
		ask = survey.Ask
	}

	questions := []*survey.Question{
		{
			Name:     "username",
			Prompt:   &survey.Input{Message: "Plex.tv email or username:"},
			Validate: survey.Required,
		},
		{
			Name:     "password",
			Prompt:   &survey.Password{Message: "Plex.tv password:"},
			Validate: survey.Required,
		},
	}

	var answers promptAnswers
	if err := ask(questions, &answers); err != nil {
		return mo.None[Credentials](), err
	}

	return mo.Some(Credentials{Username: answers.Username, Password: answers.Password}), nil
}
