package services

import (
	"fmt"
	"log"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/db"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/models"

	"gorm.io/gorm"
)

// FollowStatus is the actor-side view of the (actor, target) edge.
type FollowStatus string

const (
	StatusFollowing    FollowStatus = "following"
	StatusRequested    FollowStatus = "requested"
	StatusNotFollowing FollowStatus = "not-following"
)

// GraphService owns the follow/request state machine and the mirrored
// relationship sets. Every change that touches both sides of a pair runs in
// one transaction so the mirror cannot be half-written by a single call;
// Reconcile repairs drift introduced outside that boundary.
type GraphService struct{}

func NewGraphService() *GraphService {
	return &GraphService{}
}

func edgeExists(g *gorm.DB, userID, otherID uint, kind models.EdgeKind) bool {
	var count int64
	g.Model(&models.UserEdge{}).
		Where("user_id = ? AND other_id = ? AND kind = ?", userID, otherID, kind).
		Count(&count)
	return count > 0
}

// Follow moves (actor, target) from none to following for a public target,
// or to requested for a private one. Emits a follow notification on the
// none -> following transition only.
func (s *GraphService) Follow(actor *models.User, targetID uint) (FollowStatus, error) {
	if actor.ID == targetID {
		return "", invalidInputErr("You cannot follow yourself")
	}

	var target models.User
	if err := db.DB.First(&target, targetID).Error; err != nil {
		return "", notFoundErr("User not found")
	}

	if edgeExists(db.DB, actor.ID, target.ID, models.EdgeFollowing) {
		return "", conflictErr("Already following this user")
	}

	if target.AccountType == models.AccountTypePrivate {
		if edgeExists(db.DB, target.ID, actor.ID, models.EdgeRequest) {
			return "", conflictErr("Follow request already sent")
		}
		if err := db.DB.Create(&models.UserEdge{
			UserID:  target.ID,
			OtherID: actor.ID,
			Kind:    models.EdgeRequest,
		}).Error; err != nil {
			return "", err
		}
		log.Printf("ANALYTICS EVENT: user %s requested to follow %s", actor.Username, target.Username)
		return StatusRequested, nil
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.UserEdge{
			UserID:  target.ID,
			OtherID: actor.ID,
			Kind:    models.EdgeFollower,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserEdge{
			UserID:  actor.ID,
			OtherID: target.ID,
			Kind:    models.EdgeFollowing,
		}).Error
	})
	if err != nil {
		return "", err
	}

	notify(target.ID, actor.ID, models.NotificationTypeFollow,
		fmt.Sprintf("%s started following you.", actor.Name), "")
	log.Printf("ANALYTICS EVENT: user %s followed %s", actor.Username, target.Username)
	return StatusFollowing, nil
}

// Unfollow removes both halves of the pair. Unfollowing someone not followed
// is a no-op returning not-following.
func (s *GraphService) Unfollow(actor *models.User, targetID uint) (FollowStatus, error) {
	var target models.User
	if err := db.DB.First(&target, targetID).Error; err != nil {
		return "", notFoundErr("User not found")
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND other_id = ? AND kind = ?",
			target.ID, actor.ID, models.EdgeFollower).
			Delete(&models.UserEdge{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND other_id = ? AND kind = ?",
			actor.ID, target.ID, models.EdgeFollowing).
			Delete(&models.UserEdge{}).Error
	})
	if err != nil {
		return "", err
	}
	return StatusNotFollowing, nil
}

// CancelRequest withdraws the actor's pending request on a private target.
func (s *GraphService) CancelRequest(actor *models.User, targetID uint) (FollowStatus, error) {
	var target models.User
	if err := db.DB.First(&target, targetID).Error; err != nil {
		return "", notFoundErr("User not found")
	}

	if err := db.DB.Where("user_id = ? AND other_id = ? AND kind = ?",
		target.ID, actor.ID, models.EdgeRequest).
		Delete(&models.UserEdge{}).Error; err != nil {
		return "", err
	}
	return StatusNotFollowing, nil
}

// ApproveRequest moves the pair from requested to following. Only the target
// of the request may approve it.
func (s *GraphService) ApproveRequest(owner *models.User, requesterID uint) error {
	var requester models.User
	if err := db.DB.First(&requester, requesterID).Error; err != nil {
		return notFoundErr("Requesting user not found")
	}

	if !edgeExists(db.DB, owner.ID, requester.ID, models.EdgeRequest) {
		return notFoundErr("Follow request not found")
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND other_id = ? AND kind = ?",
			owner.ID, requester.ID, models.EdgeRequest).
			Delete(&models.UserEdge{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.UserEdge{
			UserID:  owner.ID,
			OtherID: requester.ID,
			Kind:    models.EdgeFollower,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserEdge{
			UserID:  requester.ID,
			OtherID: owner.ID,
			Kind:    models.EdgeFollowing,
		}).Error
	})
}

// DenyRequest removes a pending request without adding a follower. Denying a
// request that does not exist is a no-op.
func (s *GraphService) DenyRequest(owner *models.User, requesterID uint) error {
	return db.DB.Where("user_id = ? AND other_id = ? AND kind = ?",
		owner.ID, requesterID, models.EdgeRequest).
		Delete(&models.UserEdge{}).Error
}

// PendingRequests lists the users waiting for the owner's decision.
// Requests left behind by deleted users are filtered out.
func (s *GraphService) PendingRequests(ownerID uint) ([]models.UserSummary, error) {
	var edges []models.UserEdge
	if err := db.DB.Where("user_id = ? AND kind = ?", ownerID, models.EdgeRequest).
		Order("created_at ASC").
		Find(&edges).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.OtherID)
	}
	summaries, err := userSummaries(ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.UserSummary, 0, len(edges))
	for _, e := range edges {
		if s, ok := summaries[e.OtherID]; ok {
			result = append(result, s)
		}
	}
	return result, nil
}

// ToggleMute toggles membership of otherID in the user's muted set and
// returns the new state. The muted set is stored and surfaced but never
// consulted by the feed path.
func (s *GraphService) ToggleMute(actor *models.User, otherID uint) (bool, error) {
	return s.toggleEdge(actor.ID, otherID, models.EdgeMute)
}

// ToggleNotify toggles membership of otherID in the user's
// notification-subscription set and returns the new state.
func (s *GraphService) ToggleNotify(actor *models.User, otherID uint) (bool, error) {
	return s.toggleEdge(actor.ID, otherID, models.EdgeNotify)
}

func (s *GraphService) toggleEdge(userID, otherID uint, kind models.EdgeKind) (bool, error) {
	var other models.User
	if err := db.DB.First(&other, otherID).Error; err != nil {
		return false, notFoundErr("User not found")
	}

	if edgeExists(db.DB, userID, otherID, kind) {
		if err := db.DB.Where("user_id = ? AND other_id = ? AND kind = ?",
			userID, otherID, kind).
			Delete(&models.UserEdge{}).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if err := db.DB.Create(&models.UserEdge{
		UserID:  userID,
		OtherID: otherID,
		Kind:    kind,
	}).Error; err != nil {
		return false, err
	}
	return true, nil
}

// FillRelationSets populates the user's five id arrays from user_edges.
// Deleted users are NOT purged from these sets (known consistency gap);
// readers that populate full records filter the dangling ids instead.
func (s *GraphService) FillRelationSets(u *models.User) error {
	var edges []models.UserEdge
	if err := db.DB.Where("user_id = ?", u.ID).
		Order("created_at ASC").
		Find(&edges).Error; err != nil {
		return err
	}

	u.Followers = []uint{}
	u.Following = []uint{}
	u.FollowRequests = []uint{}
	u.MutedAccounts = []uint{}
	u.NotificationsFrom = []uint{}
	for _, e := range edges {
		switch e.Kind {
		case models.EdgeFollower:
			u.Followers = append(u.Followers, e.OtherID)
		case models.EdgeFollowing:
			u.Following = append(u.Following, e.OtherID)
		case models.EdgeRequest:
			u.FollowRequests = append(u.FollowRequests, e.OtherID)
		case models.EdgeMute:
			u.MutedAccounts = append(u.MutedAccounts, e.OtherID)
		case models.EdgeNotify:
			u.NotificationsFrom = append(u.NotificationsFrom, e.OtherID)
		}
	}
	return nil
}

// FollowingIDs returns the ids the user follows.
func (s *GraphService) FollowingIDs(userID uint) ([]uint, error) {
	var edges []models.UserEdge
	if err := db.DB.Where("user_id = ? AND kind = ?", userID, models.EdgeFollowing).
		Find(&edges).Error; err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.OtherID)
	}
	return ids, nil
}

// Reconcile repairs drift between the mirrored follower/following sets. The
// following side is treated as intent: a following row without its follower
// mirror gets the mirror recreated, and a follower row without a matching
// following row is removed. Returns the number of repaired edges.
func (s *GraphService) Reconcile() (int, error) {
	var followingEdges []models.UserEdge
	if err := db.DB.Where("kind = ?", models.EdgeFollowing).Find(&followingEdges).Error; err != nil {
		return 0, err
	}
	var followerEdges []models.UserEdge
	if err := db.DB.Where("kind = ?", models.EdgeFollower).Find(&followerEdges).Error; err != nil {
		return 0, err
	}

	type pair struct{ a, b uint }
	following := make(map[pair]bool, len(followingEdges)) // actor -> target
	for _, e := range followingEdges {
		following[pair{e.UserID, e.OtherID}] = true
	}
	mirrored := make(map[pair]bool, len(followerEdges)) // actor -> target, seen from the follower side
	for _, e := range followerEdges {
		mirrored[pair{e.OtherID, e.UserID}] = true
	}

	repaired := 0
	for p := range following {
		if !mirrored[p] {
			if err := db.DB.Create(&models.UserEdge{
				UserID:  p.b,
				OtherID: p.a,
				Kind:    models.EdgeFollower,
			}).Error; err != nil {
				return repaired, err
			}
			repaired++
		}
	}
	for p := range mirrored {
		if !following[p] {
			if err := db.DB.Where("user_id = ? AND other_id = ? AND kind = ?",
				p.b, p.a, models.EdgeFollower).
				Delete(&models.UserEdge{}).Error; err != nil {
				return repaired, err
			}
			repaired++
		}
	}
	if repaired > 0 {
		log.Printf("Graph reconcile repaired %d mirrored edges", repaired)
	}
	return repaired, nil
}
