package console

import (
	"github.com/charityfund/charity/internal/store"
	"github.com/shopspring/decimal"
)

const keepCurrent = " (leave empty to keep current)"

func (c *Console) ask(prompt string) (string, error) {
	c.printf("Enter %s:\n", prompt)
	return c.readLine()
}

func (c *Console) askID(prompt, field string) (uint, error) {
	value, err := c.ask(prompt)
	if err != nil {
		return 0, err
	}
	return store.ParseID(field, value)
}

func (c *Console) askMoney(prompt, field string) (decimal.Decimal, error) {
	value, err := c.ask(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	return store.ParseMoney(field, value)
}

func (c *Console) askHours(prompt, field string) (int, error) {
	value, err := c.ask(prompt)
	if err != nil {
		return 0, err
	}
	return store.ParseHours(field, value)
}

// askText returns nil when the operator leaves the line empty.
func (c *Console) askText(prompt string) (*string, error) {
	value, err := c.ask("new " + prompt + keepCurrent)
	if err != nil || value == "" {
		return nil, err
	}
	return &value, nil
}

func (c *Console) askOptionalID(prompt, field string) (*uint, error) {
	value, err := c.ask("new " + prompt + keepCurrent)
	if err != nil || value == "" {
		return nil, err
	}

	id, err := store.ParseID(field, value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (c *Console) askOptionalMoney(prompt, field string) (*decimal.Decimal, error) {
	value, err := c.ask("new " + prompt + keepCurrent)
	if err != nil || value == "" {
		return nil, err
	}

	amount, err := store.ParseMoney(field, value)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

func (c *Console) askOptionalHours(prompt, field string) (*int, error) {
	value, err := c.ask("new " + prompt + keepCurrent)
	if err != nil || value == "" {
		return nil, err
	}

	hours, err := store.ParseHours(field, value)
	if err != nil {
		return nil, err
	}
	return &hours, nil
}

func (c *Console) askContact(who string) (store.ContactInput, error) {
	var in store.ContactInput
	var err error

	if in.Name, err = c.ask(who + " Name"); err != nil {
		return in, err
	}
	if in.Email, err = c.ask(who + " Email"); err != nil {
		return in, err
	}
	if in.Phone, err = c.ask(who + " Phone"); err != nil {
		return in, err
	}

	return in, nil
}

func (c *Console) askContactPatch() (store.ContactPatch, error) {
	var patch store.ContactPatch
	var err error

	if patch.Name, err = c.askText("Name"); err != nil {
		return patch, err
	}
	if patch.Email, err = c.askText("Email"); err != nil {
		return patch, err
	}
	if patch.Phone, err = c.askText("Phone"); err != nil {
		return patch, err
	}

	return patch, nil
}
