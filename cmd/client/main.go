// Command client is a terminal companion for the notes API. It keeps a
// local note cache and chat transcript, mirroring the state the web
// frontend holds in the browser.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ainotes/backend/internal/client"
	"github.com/google/uuid"
)

func main() {
	var (
		baseURL string
		timeout time.Duration
	)

	flag.StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the notes API")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	flag.Parse()

	api := client.NewAPIClient(client.Config{BaseURL: baseURL, Timeout: timeout})
	store := client.NewSessionStore()

	fmt.Println("AI Notes client - type 'help' for commands")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		command, args := fields[0], fields[1:]

		if command == "quit" || command == "exit" {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		if err := dispatch(ctx, api, store, scanner, command, args); err != nil {
			if errors.Is(err, client.ErrUnauthorized) {
				fmt.Println("Not logged in or session expired. Use 'login'.")
			} else {
				fmt.Println("Error:", err)
			}
		}
		cancel()
	}
}

func dispatch(ctx context.Context, api *client.APIClient, store *client.SessionStore, scanner *bufio.Scanner, command string, args []string) error {
	switch command {
	case "help":
		printHelp()
		return nil
	case "signup":
		return runSignup(ctx, api, scanner)
	case "login":
		return runLogin(ctx, api, store, scanner)
	case "logout":
		return runLogout(ctx, api, store)
	case "whoami":
		return runWhoami(ctx, api)
	case "notes":
		return runNotes(ctx, api, store)
	case "add":
		return runAdd(ctx, api, store, scanner)
	case "show":
		return runShow(ctx, api, args)
	case "edit":
		return runEdit(ctx, api, store, scanner, args)
	case "rm":
		return runRemove(ctx, api, store, args)
	case "chat":
		return runChat(ctx, api, store, args)
	case "chat-reset":
		store.ResetTranscript()
		fmt.Println("Transcript cleared.")
		return nil
	case "generate":
		return runGenerate(ctx, api, store, args)
	default:
		return fmt.Errorf("unknown command %q, type 'help'", command)
	}
}

func printHelp() {
	fmt.Print(`Commands:
  signup                 register a new account
  login                  log in and load your notes
  logout                 revoke the session token
  whoami                 show the logged-in user
  notes                  list notes (refreshes the cache)
  add                    create a note
  show <id>              print one note
  edit <id>              replace a note's title and content
  rm <id>                delete a note
  chat <message>         chat with the AI, keeping the transcript
  chat-reset             clear the chat transcript
  generate [n] <prompt>  generate text from your notes (n = max tokens)
  quit                   exit
`)
}

func prompt(scanner *bufio.Scanner, label string) (string, error) {
	fmt.Print(label)
	if !scanner.Scan() {
		return "", errors.New("input closed")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func runSignup(ctx context.Context, api *client.APIClient, scanner *bufio.Scanner) error {
	name, err := prompt(scanner, "Name: ")
	if err != nil {
		return err
	}
	email, err := prompt(scanner, "Email: ")
	if err != nil {
		return err
	}
	password, err := prompt(scanner, "Password: ")
	if err != nil {
		return err
	}

	user, err := api.Signup(ctx, name, email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Account created for %s. Use 'login' to sign in.\n", user.Email)
	return nil
}

func runLogin(ctx context.Context, api *client.APIClient, store *client.SessionStore, scanner *bufio.Scanner) error {
	email, err := prompt(scanner, "Email: ")
	if err != nil {
		return err
	}
	password, err := prompt(scanner, "Password: ")
	if err != nil {
		return err
	}

	user, err := api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	store.SetUser(user)

	// Warm the note cache so chat/generate have context right away
	notes, err := api.ListNotes(ctx)
	if err != nil {
		return err
	}
	store.SetNotes(notes)

	fmt.Printf("Logged in as %s (%d notes).\n", user.Email, len(notes))
	return nil
}

func runLogout(ctx context.Context, api *client.APIClient, store *client.SessionStore) error {
	if err := api.Logout(ctx); err != nil {
		return err
	}
	store.Reset()
	fmt.Println("Logged out.")
	return nil
}

func runWhoami(ctx context.Context, api *client.APIClient) error {
	user, err := api.CurrentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return nil
}

func runNotes(ctx context.Context, api *client.APIClient, store *client.SessionStore) error {
	notes, err := api.ListNotes(ctx)
	if err != nil {
		return err
	}
	store.SetNotes(notes)

	if len(notes) == 0 {
		fmt.Println("No notes yet. Use 'add'.")
		return nil
	}
	for _, note := range notes {
		fmt.Printf("%s  %s\n", note.ID, note.Title)
	}
	return nil
}

func runAdd(ctx context.Context, api *client.APIClient, store *client.SessionStore, scanner *bufio.Scanner) error {
	title, err := prompt(scanner, "Title: ")
	if err != nil {
		return err
	}
	content, err := prompt(scanner, "Content: ")
	if err != nil {
		return err
	}

	note, err := api.CreateNote(ctx, title, content)
	if err != nil {
		return err
	}
	store.AddNote(note)

	fmt.Printf("Created %s\n", note.ID)
	return nil
}

func parseNoteID(args []string) (uuid.UUID, error) {
	if len(args) != 1 {
		return uuid.Nil, errors.New("expected a note ID")
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid note ID %q", args[0])
	}
	return id, nil
}

func runShow(ctx context.Context, api *client.APIClient, args []string) error {
	id, err := parseNoteID(args)
	if err != nil {
		return err
	}

	note, err := api.GetNote(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("%s\nUpdated %s\n\n%s\n", note.Title, note.UpdatedAt.Format(time.RFC3339), note.Content)
	return nil
}

func runEdit(ctx context.Context, api *client.APIClient, store *client.SessionStore, scanner *bufio.Scanner, args []string) error {
	id, err := parseNoteID(args)
	if err != nil {
		return err
	}

	title, err := prompt(scanner, "New title: ")
	if err != nil {
		return err
	}
	content, err := prompt(scanner, "New content: ")
	if err != nil {
		return err
	}

	note, err := api.UpdateNote(ctx, id, title, content)
	if err != nil {
		return err
	}
	store.UpdateNote(note)

	fmt.Println("Updated.")
	return nil
}

func runRemove(ctx context.Context, api *client.APIClient, store *client.SessionStore, args []string) error {
	id, err := parseNoteID(args)
	if err != nil {
		return err
	}

	if err := api.DeleteNote(ctx, id); err != nil {
		return err
	}
	store.RemoveNote(id)

	fmt.Println("Deleted.")
	return nil
}

func runChat(ctx context.Context, api *client.APIClient, store *client.SessionStore, args []string) error {
	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		return errors.New("usage: chat <message>")
	}

	transcript := store.AppendUserMessage(message)
	result, err := api.Chat(ctx, transcript)
	if err != nil {
		return err
	}
	store.AppendAIMessage(result)

	fmt.Println(result)
	return nil
}

func runGenerate(ctx context.Context, api *client.APIClient, store *client.SessionStore, args []string) error {
	maxTokens := 0
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			maxTokens = n
			args = args[1:]
		}
	}

	promptText := strings.TrimSpace(strings.Join(args, " "))
	if promptText == "" {
		return errors.New("usage: generate [max-tokens] <prompt>")
	}

	noteContext := store.BuildNoteContext()
	if noteContext == "" {
		return errors.New("no notes cached, run 'notes' first")
	}

	result, err := api.Generate(ctx, promptText, noteContext, maxTokens)
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}
