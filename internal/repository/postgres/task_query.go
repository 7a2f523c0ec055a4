package postgres

import (
	"fmt"
	"strings"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

const taskColumns = `
	t.id, t.title, t.description, t.due_date, t.status, t.priority, t.is_public,
	t.company_id, t.creator_id, t.created_at, t.updated_at,
	(SELECT COALESCE(string_agg(ut.user_id::text, ',' ORDER BY ut.assigned_at), '')
		FROM user_tasks ut WHERE ut.task_id = t.id) AS assignees
`

// whereBuilder собирает WHERE с позиционными параметрами $1..$n
type whereBuilder struct {
	conds []string
	args  []any
}

func (b *whereBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *whereBuilder) add(cond string) {
	b.conds = append(b.conds, cond)
}

func (b *whereBuilder) sql() string {
	if len(b.conds) == 0 {
		return "TRUE"
	}
	return strings.Join(b.conds, " AND ")
}

func involvedCondition(userParam string) string {
	return "(t.creator_id = " + userParam +
		" OR EXISTS (SELECT 1 FROM user_tasks ut WHERE ut.task_id = t.id AND ut.user_id = " + userParam + "))"
}

// buildTaskWhere переводит TaskScope и фильтры в условие над tasks t
func buildTaskWhere(q domain.TaskQuery) (string, []any) {
	b := &whereBuilder{}
	scope := q.Scope

	switch scope.Kind {
	case domain.ScopePersonal:
		b.add("t.company_id IS NULL")
		b.add("t.creator_id = " + b.arg(scope.UserID))
	case domain.ScopeCompanyAll:
		b.add("t.company_id = " + b.arg(scope.CompanyID))
	case domain.ScopeCompanyPublic:
		b.add("t.company_id = " + b.arg(scope.CompanyID))
		b.add("t.is_public = TRUE")
	case domain.ScopeCompanyInvolved:
		b.add("t.company_id = " + b.arg(scope.CompanyID))
		b.add(involvedCondition(b.arg(scope.UserID)))
	case domain.ScopeCompanyVisible:
		b.add("t.company_id = " + b.arg(scope.CompanyID))
		user := b.arg(scope.UserID)
		b.add("(t.is_public = TRUE OR " + involvedCondition(user) + ")")
	default:
		b.add("FALSE")
	}

	if q.Status != nil {
		b.add("t.status = " + b.arg(string(*q.Status)))
	}
	if q.Priority != nil {
		b.add("t.priority = " + b.arg(string(*q.Priority)))
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		p := b.arg("%" + escapeLike(search) + "%")
		b.add("(t.title ILIKE " + p + " OR COALESCE(t.description, '') ILIKE " + p + ")")
	}

	return b.sql(), b.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func splitAssignees(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
