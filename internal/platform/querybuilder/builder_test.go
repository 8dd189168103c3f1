package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectWithJoinsAndOr(t *testing.T) {
	query, args, err := Select("b.playerID", "t.team_name").
		From("batting b").
		Join("teams t ON b.teamID = t.teamID AND b.yearID = t.yearID").
		LeftJoin("halloffame hf ON b.playerID = hf.playerID").
		Where(
			Or(Like("t.team_name", "Red Sox"), Like("t.teamID", "Red Sox")),
			Eq("b.yearID", 2023),
		).
		OrderBy("b.b_AB DESC").
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantQuery := "SELECT b.playerID, t.team_name FROM batting b " +
		"JOIN teams t ON b.teamID = t.teamID AND b.yearID = t.yearID " +
		"LEFT JOIN halloffame hf ON b.playerID = hf.playerID " +
		"WHERE (LOWER(t.team_name) LIKE $1 OR LOWER(t.teamID) LIKE $2) AND b.yearID = $3 " +
		"ORDER BY b.b_AB DESC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, wantQuery)
	}

	wantArgs := []any{"%red sox%", "%red sox%", 2023}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("unexpected args: got=%v want=%v", args, wantArgs)
	}
}

func TestSelectDistinctLimit(t *testing.T) {
	query, args, err := Select("team_name", "teamID").
		Distinct().
		From("teams").
		Where(Like("team_name", "B")).
		OrderBy("team_name").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantQuery := "SELECT DISTINCT team_name, teamID FROM teams WHERE LOWER(team_name) LIKE $1 ORDER BY team_name LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "%b%" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectLimitOffset(t *testing.T) {
	query, _, err := Select("id").
		From("posts").
		OrderBy("created_at DESC").
		Limit(5).
		Offset(10).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "SELECT id FROM posts ORDER BY created_at DESC LIMIT 5 OFFSET 10" {
		t.Fatalf("unexpected query: %s", query)
	}
}

func TestSelectValidation(t *testing.T) {
	if _, _, err := Select().From("teams").ToSQL(); err == nil {
		t.Fatal("expected error for missing columns")
	}
	if _, _, err := Select("x").ToSQL(); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestInsertWithReturning(t *testing.T) {
	query, args, err := InsertInto("posts").
		Columns("user_id", "content").
		Values(int64(7), "hello").
		Suffix("RETURNING id, created_at").
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantQuery := "INSERT INTO posts (user_id, content) VALUES ($1, $2) RETURNING id, created_at"
	if query != wantQuery {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertRowShapeMismatch(t *testing.T) {
	_, _, err := InsertInto("posts").
		Columns("user_id", "content").
		Values(int64(7)).
		ToSQL()
	if err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestUpdate(t *testing.T) {
	query, args, err := Update("users").
		Set("is_admin", true).
		Where(Eq("id", int64(3))).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantQuery := "UPDATE users SET is_admin = $1 WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{true, int64(3)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestDeleteRequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("likes").ToSQL(); err == nil {
		t.Fatal("expected error for missing where clause")
	}

	query, args, err := DeleteFrom("likes").
		Where(Eq("post_id", int64(1)), Eq("user_id", int64(2))).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "DELETE FROM likes WHERE post_id = $1 AND user_id = $2" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestExprRewritesPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("posts").
		Where(Expr("created_at > ?", "2020-01-01"), Eq("user_id", int64(9))).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "SELECT id FROM posts WHERE created_at > $1 AND user_id = $2" {
		t.Fatalf("unexpected query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{"2020-01-01", int64(9)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}
