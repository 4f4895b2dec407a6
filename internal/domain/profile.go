package domain

type Profile struct {
	ID             int64
	Username       string
	Bio            string
	FollowersCount int
	FollowingCount int
	Followed       bool
}

func (p Profile) Subject() SubjectKey {
	return SubjectKey{Kind: SubjectProfile, ID: p.Username}
}
