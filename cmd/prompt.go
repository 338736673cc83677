package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/perofficial/biomarket"
)

// prompter obtains validated values from an interactive stream, re-asking
// until the input is acceptable. Read failures (closed stdin) surface as
// errors so the caller can stop the loop.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *prompter) read(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// nonEmptyString keeps asking until the trimmed input is not empty.
func (p *prompter) nonEmptyString(prompt string) (string, error) {
	for {
		value, err := p.read(prompt)
		if err != nil {
			return "", err
		}
		if value == "" {
			fmt.Fprintln(p.out, "[ERROR] The field cannot be empty. Try again.")
			continue
		}
		return value, nil
	}
}

// positiveInt keeps asking until the input is an integer greater than zero.
func (p *prompter) positiveInt(prompt string) (int, error) {
	for {
		value, err := p.read(prompt)
		if err != nil {
			return 0, err
		}
		if value == "" {
			fmt.Fprintln(p.out, "[ERROR] The field cannot be empty. Try again.")
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintln(p.out, "[ERROR] Enter a valid integer. Try again.")
			continue
		}
		if n <= 0 {
			fmt.Fprintln(p.out, "[ERROR] The value must be a positive number. Try again.")
			continue
		}
		return n, nil
	}
}

// price keeps asking until the input is a non-negative decimal. A comma is
// accepted as the decimal separator.
func (p *prompter) price(prompt string) (biomarket.Price, error) {
	for {
		value, err := p.read(prompt)
		if err != nil {
			return biomarket.Price{}, err
		}
		if value == "" {
			fmt.Fprintln(p.out, "[ERROR] The field cannot be empty. Try again.")
			continue
		}
		price, err := biomarket.ParsePrice(value)
		if err != nil {
			fmt.Fprintln(p.out, "[ERROR] Enter a valid decimal number. Try again.")
			continue
		}
		if price.IsNegative() {
			fmt.Fprintln(p.out, "[ERROR] The value must be a non-negative number. Try again.")
			continue
		}
		return price, nil
	}
}

// yesNo keeps asking until the answer is recognizable as yes or no.
func (p *prompter) yesNo(prompt string) (bool, error) {
	for {
		value, err := p.read(prompt + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(value) {
		case "y", "yes", "s", "si":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(p.out, "[ERROR] Answer 'y' (yes) or 'n' (no). Try again.")
		}
	}
}
