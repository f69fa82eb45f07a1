package service

import (
	"Pulse/internal/model"
	"Pulse/internal/pkg/mongo"
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内存版仓储，服务层测试共用

type fakePostRepo struct {
	posts map[uint64]*model.Post
}

func newFakePostRepo(posts ...*model.Post) *fakePostRepo {
	m := make(map[uint64]*model.Post, len(posts))
	for _, p := range posts {
		m[p.ID] = p
	}
	return &fakePostRepo{posts: m}
}

func (f *fakePostRepo) GetPostByID(_ context.Context, postID uint64) (*model.Post, error) {
	p, ok := f.posts[postID]
	if !ok || p.IsDeleted {
		return nil, nil
	}
	return p, nil
}

func (f *fakePostRepo) ListCreatedSince(_ context.Context, since time.Time, lastID uint64, batchSize int) ([]*model.Post, error) {
	out := make([]*model.Post, 0)
	for _, p := range f.posts {
		if !p.IsDeleted && !p.CreatedAt.Before(since) && p.ID > lastID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > batchSize {
		out = out[:batchSize]
	}
	return out, nil
}

func (f *fakePostRepo) ListNewest(_ context.Context, limit int) ([]*model.Post, error) {
	out := make([]*model.Post, 0)
	for _, p := range f.posts {
		if !p.IsDeleted {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePostRepo) ListNewestByAuthors(_ context.Context, authorIDs []uint64, limit int) ([]*model.Post, error) {
	allowed := make(map[uint64]bool, len(authorIDs))
	for _, id := range authorIDs {
		allowed[id] = true
	}
	out := make([]*model.Post, 0)
	for _, p := range f.posts {
		if !p.IsDeleted && allowed[p.UserID] {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePostRepo) SaveOrUpdatePost(_ context.Context, post *model.Post) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) MarkDeleted(_ context.Context, postID uint64) error {
	if p, ok := f.posts[postID]; ok {
		p.IsDeleted = true
	}
	return nil
}

type fakePostScoreRepo struct {
	scores map[uint64]*model.PostScore
}

func newFakePostScoreRepo() *fakePostScoreRepo {
	return &fakePostScoreRepo{scores: make(map[uint64]*model.PostScore)}
}

func (f *fakePostScoreRepo) SaveOrUpdateScore(_ context.Context, score *model.PostScore) error {
	f.scores[score.PostID] = score
	return nil
}

func (f *fakePostScoreRepo) GetScoreByPostID(_ context.Context, postID uint64) (*model.PostScore, error) {
	return f.scores[postID], nil
}

func (f *fakePostScoreRepo) ListTopScores(_ context.Context, limit int) ([]*model.PostScore, error) {
	out := make([]*model.PostScore, 0, len(f.scores))
	for _, s := range f.scores {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].PostID < out[j].PostID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePostScoreRepo) ListScoresByPostIDs(_ context.Context, postIDs []uint64) ([]*model.PostScore, error) {
	out := make([]*model.PostScore, 0, len(postIDs))
	for _, id := range postIDs {
		if s, ok := f.scores[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakePostScoreRepo) PruneComputedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for id, s := range f.scores {
		if s.ComputedAt.Before(cutoff) {
			delete(f.scores, id)
			n++
		}
	}
	return n, nil
}

type fakeSnapshotRepo struct {
	snapshots map[uint64][]*model.EngagementSnapshot
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{snapshots: make(map[uint64][]*model.EngagementSnapshot)}
}

func (f *fakeSnapshotRepo) SaveSnapshot(_ context.Context, snapshot *model.EngagementSnapshot) error {
	for _, s := range f.snapshots[snapshot.PostID] {
		if s.SnapshotAt.Equal(snapshot.SnapshotAt) {
			*s = *snapshot
			return nil
		}
	}
	f.snapshots[snapshot.PostID] = append(f.snapshots[snapshot.PostID], snapshot)
	return nil
}

func (f *fakeSnapshotRepo) GetLatestTwo(_ context.Context, postID uint64) ([]*model.EngagementSnapshot, error) {
	list := append([]*model.EngagementSnapshot(nil), f.snapshots[postID]...)
	sort.Slice(list, func(i, j int) bool { return list[i].SnapshotAt.After(list[j].SnapshotAt) })
	if len(list) > 2 {
		list = list[:2]
	}
	return list, nil
}

func (f *fakeSnapshotRepo) PurgeBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for id, list := range f.snapshots {
		kept := list[:0]
		for _, s := range list {
			if s.SnapshotAt.Before(cutoff) {
				n++
				continue
			}
			kept = append(kept, s)
		}
		f.snapshots[id] = kept
	}
	return n, nil
}

type fakeProfileRepo struct {
	profiles map[uint64]*model.UserProfile
}

func newFakeProfileRepo(profiles ...*model.UserProfile) *fakeProfileRepo {
	m := make(map[uint64]*model.UserProfile, len(profiles))
	for _, p := range profiles {
		m[p.UserID] = p
	}
	return &fakeProfileRepo{profiles: m}
}

func (f *fakeProfileRepo) SaveOrUpdateProfile(_ context.Context, profile *model.UserProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) GetProfileByUserID(_ context.Context, userID uint64) (*model.UserProfile, error) {
	return f.profiles[userID], nil
}

func (f *fakeProfileRepo) GetProfilesByUserIDs(_ context.Context, userIDs []uint64) (map[uint64]*model.UserProfile, error) {
	out := make(map[uint64]*model.UserProfile)
	for _, id := range userIDs {
		if p, ok := f.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type fakeFollowRepo struct {
	follows map[uint64]map[uint64]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{follows: make(map[uint64]map[uint64]bool)}
}

func (f *fakeFollowRepo) SaveFollow(_ context.Context, follow *model.UserFollow) error {
	if f.follows[follow.FollowerID] == nil {
		f.follows[follow.FollowerID] = make(map[uint64]bool)
	}
	f.follows[follow.FollowerID][follow.FollowingID] = true
	return nil
}

func (f *fakeFollowRepo) DeleteFollow(_ context.Context, followerID, followingID uint64) error {
	delete(f.follows[followerID], followingID)
	return nil
}

func (f *fakeFollowRepo) IsFollowing(_ context.Context, followerID, followingID uint64) (bool, error) {
	return f.follows[followerID][followingID], nil
}

func (f *fakeFollowRepo) ListFollowingIDs(_ context.Context, followerID uint64) ([]uint64, error) {
	ids := make([]uint64, 0, len(f.follows[followerID]))
	for id := range f.follows[followerID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

type fakeInterestRepo struct {
	weights map[uint64]map[string]float64
}

func newFakeInterestRepo() *fakeInterestRepo {
	return &fakeInterestRepo{weights: make(map[uint64]map[string]float64)}
}

func (f *fakeInterestRepo) ReinforceInterest(_ context.Context, userID uint64, tag string, increment float64) error {
	if f.weights[userID] == nil {
		f.weights[userID] = make(map[string]float64)
	}
	f.weights[userID][tag] += increment
	return nil
}

func (f *fakeInterestRepo) GetUserInterests(_ context.Context, userID uint64) ([]*model.UserInterest, error) {
	out := make([]*model.UserInterest, 0, len(f.weights[userID]))
	for tag, weight := range f.weights[userID] {
		out = append(out, &model.UserInterest{UserID: userID, Tag: tag, Weight: weight})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	return out, nil
}

func (f *fakeInterestRepo) DecayAll(_ context.Context, factor, pruneThreshold float64) (int64, int64, error) {
	var decayed, pruned int64
	for userID, tags := range f.weights {
		for tag, weight := range tags {
			weight *= factor
			decayed++
			if weight < pruneThreshold {
				delete(tags, tag)
				pruned++
				continue
			}
			tags[tag] = weight
		}
		if len(tags) == 0 {
			delete(f.weights, userID)
		}
	}
	return decayed, pruned, nil
}

type fakeHashtagRepo struct {
	tags     map[uint64]*model.Hashtag
	mentions []*model.HashtagMention
}

func newFakeHashtagRepo(tags ...*model.Hashtag) *fakeHashtagRepo {
	m := make(map[uint64]*model.Hashtag, len(tags))
	for _, t := range tags {
		m[t.ID] = t
	}
	return &fakeHashtagRepo{tags: m}
}

func (f *fakeHashtagRepo) GetOrCreate(_ context.Context, name string, now time.Time) (*model.Hashtag, error) {
	for _, t := range f.tags {
		if t.Name == name {
			return t, nil
		}
	}
	tag := &model.Hashtag{ID: uint64(len(f.tags) + 1), Name: name, LastMentionAt: now}
	f.tags[tag.ID] = tag
	return tag, nil
}

func (f *fakeHashtagRepo) RecordMention(_ context.Context, hashtagID, postID uint64, mentionedAt time.Time) error {
	f.mentions = append(f.mentions, &model.HashtagMention{
		HashtagID:   hashtagID,
		PostID:      postID,
		MentionedAt: mentionedAt,
	})
	if t, ok := f.tags[hashtagID]; ok {
		t.MentionCount++
		t.LastMentionAt = mentionedAt
	}
	return nil
}

func (f *fakeHashtagRepo) ListMentionsSince(_ context.Context, since time.Time) ([]*model.HashtagMention, error) {
	out := make([]*model.HashtagMention, 0)
	for _, m := range f.mentions {
		if !m.MentionedAt.Before(since) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeHashtagRepo) GetHashtagsByIDs(_ context.Context, ids []uint64) ([]*model.Hashtag, error) {
	out := make([]*model.Hashtag, 0, len(ids))
	for _, id := range ids {
		if t, ok := f.tags[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeHashtagRepo) PurgeMentionsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	kept := f.mentions[:0]
	for _, m := range f.mentions {
		if m.MentionedAt.Before(cutoff) {
			n++
			continue
		}
		kept = append(kept, m)
	}
	f.mentions = kept
	return n, nil
}

type fakeLocker struct {
	mu   sync.Mutex
	held map[string]string
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]string)}
}

func (f *fakeLocker) Acquire(_ context.Context, key string, token string, _ time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.held[key]; ok {
		return false, nil
	}
	f.held[key] = token
	return true, nil
}

func (f *fakeLocker) Release(_ context.Context, key string, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.held[key] == token {
		delete(f.held, key)
	}
	return nil
}

type fakeJobRunRepo struct {
	mu   sync.Mutex
	runs []*mongo.JobRunModel
}

func newFakeJobRunRepo() *fakeJobRunRepo {
	return &fakeJobRunRepo{}
}

func (f *fakeJobRunRepo) Create(_ context.Context, run *mongo.JobRunModel) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	run.ID = primitive.NewObjectID()
	f.runs = append(f.runs, run)
	return run.ID, nil
}

func (f *fakeJobRunRepo) Finish(_ context.Context, id primitive.ObjectID, outcome string, affected int64, errMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for _, run := range f.runs {
		if run.ID == id {
			run.FinishedAt = &now
			run.Outcome = outcome
			run.Affected = affected
			run.Error = errMsg
			return nil
		}
	}
	return nil
}

func (f *fakeJobRunRepo) History(_ context.Context, jobName string, limit int64) ([]*mongo.JobRunModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*mongo.JobRunModel, 0)
	for _, run := range f.runs {
		if run.JobName == jobName {
			out = append(out, run)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeJobRunRepo) outcomes(jobName string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0)
	for _, run := range f.runs {
		if run.JobName == jobName {
			out = append(out, run.Outcome)
		}
	}
	return out
}

type fakeAlertSender struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeAlertSender) JobFailed(_ context.Context, jobName string, _ error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, jobName)
}
