package main

import (
	"fmt"

	"github.com/edu-platform/educlient/shared/api"
)

type formsCmd struct {
	Contact formsContactCmd `cmd:"" help:"send the contact form"`
}

type formsContactCmd struct {
	Name    string `required:"" help:"your name"`
	Email   string `required:"" help:"reply address"`
	Message string `required:"" help:"message text"`
	Phone   string `help:"phone number"`
	Subject string `help:"subject line"`
}

func (c *formsContactCmd) Run(g *globalOptions) error {
	resp, err := g.client.SubmitContactForm(g.ctx, api.ContactForm{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Subject: c.Subject,
		Message: c.Message,
	})
	if err != nil {
		return err
	}
	if g.JSON {
		return g.printJSON(resp)
	}
	fmt.Fprintf(g.out, "submitted %s (%s)\n", resp.Data.ID, resp.Data.Status)
	return nil
}
