package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/IvanChernomyrdin/go-todo-api/internal/agent/api"
	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/models"
)

// для тестов
var NewAPIClient = api.NewClient

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printUsers(w io.Writer, users []models.User) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tADMIN")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", u.ID, u.Name, u.Email, u.IsAdmin)
	}
	return tw.Flush()
}

func printTodos(w io.Writer, todos []models.Todo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOMPLETED\tOWNER")
	for _, t := range todos {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", t.ID, t.Name, t.Completed, t.Owner.Email)
	}
	return tw.Flush()
}

// output печатает ответ таблицей или, с --json, как есть.
func (a *App) output(w io.Writer, v any) error {
	if a.JSON {
		return printJSON(w, v)
	}
	switch x := v.(type) {
	case []models.User:
		return printUsers(w, x)
	case models.User:
		return printUsers(w, []models.User{x})
	case []models.Todo:
		return printTodos(w, x)
	case models.Todo:
		return printTodos(w, []models.Todo{x})
	case models.MessageResponse:
		_, err := fmt.Fprintln(w, x.Success)
		return err
	case models.HealthResponse:
		_, err := fmt.Fprintln(w, x.Status)
		return err
	default:
		return printJSON(w, v)
	}
}
