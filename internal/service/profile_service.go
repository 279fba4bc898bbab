package service

import (
	"errors"

	"github.com/Pooja123-meshram/talentsprout-project/internal/model"
	"github.com/Pooja123-meshram/talentsprout-project/internal/repository"

	"gorm.io/gorm"
)

type ProfileService struct {
	ProfileRepo *repository.ProfileRepository
}

func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{ProfileRepo: profileRepo}
}

// ProfileView bundles the profile with its sub-resources for the
// profile page.
type ProfileView struct {
	Profile    *model.UserProfile `json:"profile"`
	BankDetail *model.BankDetail  `json:"bankDetail,omitempty"`
	Educations []model.Education  `json:"educations"`
	Links      []model.SocialLink `json:"socialLinks"`
}

func (s *ProfileService) GetProfile(userID uint) (*ProfileView, error) {
	profile, err := s.ProfileRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{Profile: profile}

	bank, err := s.ProfileRepo.GetBankDetail(userID)
	if err == nil {
		view.BankDetail = bank
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if view.Educations, err = s.ProfileRepo.ListEducations(userID); err != nil {
		return nil, err
	}
	if view.Links, err = s.ProfileRepo.ListSocialLinks(userID); err != nil {
		return nil, err
	}
	return view, nil
}

type ProfileUpdateRequest struct {
	Headline string `json:"headline"`
	Bio      string `json:"bio"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
	Location string `json:"location"`
}

func (s *ProfileService) UpdateProfile(userID uint, req ProfileUpdateRequest) (*model.UserProfile, error) {
	profile, err := s.ProfileRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	profile.Headline = req.Headline
	profile.Bio = req.Bio
	profile.Phone = req.Phone
	profile.Avatar = req.Avatar
	profile.Location = req.Location
	if err := s.ProfileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) UpdateBankDetail(userID uint, detail *model.BankDetail) error {
	detail.UserID = userID
	return s.ProfileRepo.UpsertBankDetail(detail)
}

func (s *ProfileService) AddEducation(userID uint, education *model.Education) error {
	education.UserID = userID
	return s.ProfileRepo.CreateEducation(education)
}

func (s *ProfileService) RemoveEducation(userID, id uint) error {
	return s.ProfileRepo.DeleteEducation(userID, id)
}

func (s *ProfileService) AddSocialLink(userID uint, link *model.SocialLink) error {
	link.UserID = userID
	return s.ProfileRepo.CreateSocialLink(link)
}

func (s *ProfileService) RemoveSocialLink(userID, id uint) error {
	return s.ProfileRepo.DeleteSocialLink(userID, id)
}
