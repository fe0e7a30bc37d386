package auth

type Role string

const (
	RoleCoach   Role = "COACH"
	RoleAthlete Role = "ATHLETE"
)

func (r Role) IsValid() bool {
	return r == RoleCoach || r == RoleAthlete
}

func (r Role) String() string {
	return string(r)
}
