package root

import (
	"fmt"
	"io"
	"strings"

	"github.com/dukerupert/togethertracker/internal/model"
	"github.com/dukerupert/togethertracker/internal/ui"
)

// matchID finds the one id equal to ref or starting with it.
func matchID(kind, ref string, ids []string) (string, error) {
	ref = strings.TrimSpace(ref)
	var found []string
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if ref != "" && strings.HasPrefix(id, ref) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("no %s matches %q", kind, ref)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%q matches %d %ss, use more of the id", ref, len(found), kind)
	}
}

// resolveMember accepts a member id, id prefix or display name.
func resolveMember(ref string) (model.Member, error) {
	members := app.Members()
	for _, m := range members {
		if strings.EqualFold(m.DisplayName, strings.TrimSpace(ref)) {
			return m, nil
		}
	}
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	id, err := matchID("member", ref, ids)
	if err != nil {
		return model.Member{}, err
	}
	for _, m := range members {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Member{}, fmt.Errorf("no member matches %q", ref)
}

func resolveTask(ref string) (string, error) {
	tasks := app.Tasks()
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return matchID("task", ref, ids)
}

func resolveShoppingItem(ref string) (string, error) {
	items := app.ShoppingItems()
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return matchID("item", ref, ids)
}

// resolveReward accepts a reward id, id prefix or name.
func resolveReward(ref string) (string, error) {
	entries := app.Rewards("all")
	ids := make([]string, len(entries))
	for i, e := range entries {
		if strings.EqualFold(e.Name, strings.TrimSpace(ref)) {
			return e.ID, nil
		}
		ids[i] = e.ID
	}
	return matchID("reward", ref, ids)
}

func printNotices(w io.Writer) {
	for _, n := range app.Notices() {
		fmt.Fprintln(w, ui.Good.Render(n.Text))
	}
}
