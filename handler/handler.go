package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	models "cart-manager/model"
	"cart-manager/service"

	"go.uber.org/zap"
)

const (
	msgInvalidOption = "Invalid option. Please try again."
	msgInvalidInput  = "Invalid input, please enter a number."
	msgInvalidType   = "Invalid type selected."
)

// Menu choices.
const (
	choiceAdd = iota + 1
	choiceRemove
	choiceSave
	choiceLoad
	choiceDisplay
	choiceExit
)

type state int

const (
	stateRunning state = iota
	stateTerminated
)

var errNotANumber = errors.New("not a number")

// Handler is the console layer that talks to service.ServiceInterface.
type Handler struct {
	svc service.ServiceInterface
	in  *bufio.Reader
	out io.Writer
	log *zap.Logger
}

// NewHandler returns a Handler reading answers from in and writing prompts to out.
func NewHandler(s service.ServiceInterface, in io.Reader, out io.Writer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: s, in: bufio.NewReader(in), out: out, log: logger}
}

// Run shows the menu until the user picks Exit or input runs out. Only a
// failure to read input is returned as an error.
func (h *Handler) Run() error {
	for st := stateRunning; st == stateRunning; {
		h.printMenu()
		choice, err := h.readInt()
		switch {
		case errors.Is(err, io.EOF):
			st = stateTerminated
			continue
		case errors.Is(err, errNotANumber):
			h.println(msgInvalidInput)
			continue
		case err != nil:
			return err
		}

		h.log.Debug("menu choice", zap.Int("choice", choice))
		if st, err = h.dispatch(choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (h *Handler) dispatch(choice int) (state, error) {
	var err error
	switch choice {
	case choiceAdd:
		err = h.AddItem()
	case choiceRemove:
		err = h.RemoveItem()
	case choiceSave:
		h.SaveCart()
	case choiceLoad:
		h.LoadCart()
	case choiceDisplay:
		err = h.DisplayCart()
	case choiceExit:
		return stateTerminated, nil
	default:
		h.println(msgInvalidOption)
	}
	return stateRunning, err
}

func (h *Handler) printMenu() {
	h.println("")
	h.println("1. Add Item to Cart")
	h.println("2. Remove Item from Cart")
	h.println("3. Save Cart")
	h.println("4. Restore Cart")
	h.println("5. Display Cart")
	h.println("6. Exit")
	h.print("Choose an option: ")
}

// AddItem handles menu option 1. It asks for the item category and the
// fields it needs, then adds the item. A bad answer abandons the item
// without touching the cart.
func (h *Handler) AddItem() error {
	h.println("Select type of item to add:")
	h.println("1. Fruit")
	h.println("2. Vegetable")
	h.println("3. Canned Item")
	choice, err := h.readInt()
	if err != nil {
		return h.inputErr(err)
	}
	kind, ok := models.ParseKind(choice)
	if !ok {
		h.println(msgInvalidType)
		return nil
	}

	h.print("Enter item name: ")
	name, err := h.readLine()
	if err != nil {
		return err
	}

	var item models.Item
	switch kind {
	case models.KindFruit:
		h.print("Enter type (Local, Tropical, Imported): ")
		fruitType, err := h.readLine()
		if err != nil {
			return err
		}
		h.print("Enter number of items: ")
		qty, err := h.readCount()
		if err != nil {
			return h.inputErr(err)
		}
		item = models.NewFruit(name, fruitType, qty)
	case models.KindVegetable:
		h.print("Enter type (Leafy Green, Cruciferous, Root): ")
		vegType, err := h.readLine()
		if err != nil {
			return err
		}
		h.print("Enter weight: ")
		weight, err := h.readWeight()
		if err != nil {
			return h.inputErr(err)
		}
		item = models.NewVegetable(name, vegType, weight)
	case models.KindCanned:
		h.print("Enter number of cans: ")
		cans, err := h.readCount()
		if err != nil {
			return h.inputErr(err)
		}
		item = models.NewCannedItem(name, cans)
	}

	h.svc.AddItem(item)
	return nil
}

// RemoveItem handles menu option 2: removes every item with the given name.
func (h *Handler) RemoveItem() error {
	h.print("Enter item name to remove: ")
	name, err := h.readLine()
	if err != nil {
		return err
	}
	h.svc.RemoveItem(name)
	return nil
}

// SaveCart handles menu option 3: writes the cart to the configured file.
func (h *Handler) SaveCart() {
	if err := h.svc.Save(); err != nil {
		h.println("Failed to save cart: " + err.Error())
		return
	}
	h.println("Cart saved.")
}

// LoadCart handles menu option 4: replaces the cart with the saved one.
func (h *Handler) LoadCart() {
	if err := h.svc.Load(); err != nil {
		h.println("Failed to load cart: " + err.Error())
		return
	}
	h.println("Cart restored.")
}

// DisplayCart handles menu option 5: lists items with their cost and the total.
func (h *Handler) DisplayCart() error {
	h.println("Items in Cart:")
	return h.svc.Display(h.out)
}

// inputErr prints the retry hint for malformed numbers and swallows them;
// anything else (end of input, read failures) is passed up.
func (h *Handler) inputErr(err error) error {
	if errors.Is(err, errNotANumber) {
		h.log.Debug("rejected input", zap.Error(err))
		h.println(msgInvalidInput)
		return nil
	}
	return err
}

// --- input helpers ---

// readLine returns the next line without its line ending, however long it
// is. A final line with no trailing newline still counts; io.EOF is only
// returned once nothing is left.
func (h *Handler) readLine() (string, error) {
	line, err := h.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (h *Handler) readInt() (int, error) {
	line, err := h.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotANumber, line)
	}
	return n, nil
}

func (h *Handler) readCount() (int, error) {
	n, err := h.readInt()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative count %d", errNotANumber, n)
	}
	return n, nil
}

func (h *Handler) readWeight() (float64, error) {
	line, err := h.readLine()
	if err != nil {
		return 0, err
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil || w < 0 || math.IsInf(w, 0) || math.IsNaN(w) {
		return 0, fmt.Errorf("%w: %q", errNotANumber, line)
	}
	return w, nil
}

// --- output helpers ---

func (h *Handler) print(s string) {
	_, _ = io.WriteString(h.out, s)
}

func (h *Handler) println(s string) {
	_, _ = io.WriteString(h.out, s+"\n")
}
