package domain

// TodoAccepted is the literal reply of the demo todo action.
const TodoAccepted = "ok"

// AddTodo is the demo server action. It accepts any title and always succeeds;
// nothing is stored.
func AddTodo(_ string) (string, error) {
	return TodoAccepted, nil
}
