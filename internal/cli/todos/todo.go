package todos

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avwray/lifedeck/internal/cli"
	"github.com/avwray/lifedeck/internal/models"
	"github.com/avwray/lifedeck/internal/validation"
)

type TodoCmd struct {
	Add     TodoAddCmd     `cmd:"" help:"Add a new todo."`
	List    TodoListCmd    `cmd:"" help:"List todos."`
	Done    TodoDoneCmd    `cmd:"" help:"Mark a todo as completed."`
	Reopen  TodoReopenCmd  `cmd:"" help:"Mark a completed todo as open again."`
	Delete  TodoDeleteCmd  `cmd:"" help:"Delete a todo (soft delete)."`
	Restore TodoRestoreCmd `cmd:"" help:"Restore a deleted todo."`
}

type TodoAddCmd struct {
	Text     string `arg:"" help:"Todo text."`
	Priority string `short:"p" help:"Priority (high|medium|low)." default:"medium"`
}

func (c *TodoAddCmd) Run(ctx *cli.Context) error {
	if err := validation.Title(c.Text); err != nil {
		return fmt.Errorf("todo text cannot be empty")
	}
	priority, err := validation.Priority(c.Priority)
	if err != nil {
		return err
	}

	todo := models.Todo{
		ID:        uuid.New().String(),
		Owner:     ctx.Settings().Owner,
		Text:      c.Text,
		Priority:  priority,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddTodo(todo); err != nil {
		return err
	}

	fmt.Printf("Added todo: %s\n", c.Text)
	return nil
}

type TodoListCmd struct {
	All     bool `short:"a" help:"Include completed todos."`
	Deleted bool `help:"Include deleted todos."`
}

func (c *TodoListCmd) Run(ctx *cli.Context) error {
	todos, err := ctx.Store.GetAllTodos(c.Deleted)
	if err != nil {
		return err
	}

	shown := 0
	for _, todo := range todos {
		if todo.Completed && !c.All {
			continue
		}
		status := "[ ]"
		if todo.Completed {
			status = "[x]"
		}
		suffix := ""
		if todo.DeletedAt != nil {
			suffix = " [DELETED]"
		}
		fmt.Printf("%s (%s) %s%s\n", status, strings.ToLower(string(todo.Priority)), todo.Text, suffix)
		shown++
	}

	if shown == 0 {
		fmt.Println("No todos found.")
	}
	return nil
}

type TodoDoneCmd struct {
	Text string `arg:"" help:"Todo text."`
}

func (c *TodoDoneCmd) Run(ctx *cli.Context) error {
	todo, err := findTodoByText(ctx, c.Text, false)
	if err != nil {
		return err
	}

	if todo.Completed {
		fmt.Printf("Todo %q is already completed\n", c.Text)
		return nil
	}

	todo.Completed = true
	if err := ctx.Store.UpdateTodo(todo); err != nil {
		return err
	}

	fmt.Printf("Completed todo: %s\n", c.Text)
	return nil
}

type TodoReopenCmd struct {
	Text string `arg:"" help:"Todo text."`
}

func (c *TodoReopenCmd) Run(ctx *cli.Context) error {
	todo, err := findTodoByText(ctx, c.Text, false)
	if err != nil {
		return err
	}

	if !todo.Completed {
		fmt.Printf("Todo %q is not completed\n", c.Text)
		return nil
	}

	todo.Completed = false
	if err := ctx.Store.UpdateTodo(todo); err != nil {
		return err
	}

	fmt.Printf("Reopened todo: %s\n", c.Text)
	return nil
}

type TodoDeleteCmd struct {
	Text string `arg:"" help:"Todo text."`
}

func (c *TodoDeleteCmd) Run(ctx *cli.Context) error {
	todo, err := findTodoByText(ctx, c.Text, false)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteTodo(todo.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted todo: %s\n", c.Text)
	fmt.Println("(This is a soft delete. Use 'lifedeck todo restore' to undo)")
	return nil
}

type TodoRestoreCmd struct {
	Text string `arg:"" help:"Todo text."`
}

func (c *TodoRestoreCmd) Run(ctx *cli.Context) error {
	todos, err := ctx.Store.GetAllTodos(true)
	if err != nil {
		return err
	}

	for _, todo := range todos {
		if todo.Text == c.Text && todo.DeletedAt != nil {
			if err := ctx.Store.RestoreTodo(todo.ID); err != nil {
				return err
			}
			fmt.Printf("Restored todo: %s\n", c.Text)
			return nil
		}
	}

	return fmt.Errorf("deleted todo %q not found", c.Text)
}

func findTodoByText(ctx *cli.Context, text string, includeDeleted bool) (models.Todo, error) {
	todos, err := ctx.Store.GetAllTodos(includeDeleted)
	if err != nil {
		return models.Todo{}, err
	}
	for _, todo := range todos {
		if todo.Text == text {
			return todo, nil
		}
	}
	return models.Todo{}, fmt.Errorf("todo %q not found", text)
}
