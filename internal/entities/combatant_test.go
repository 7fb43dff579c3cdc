package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-adventure/internal/entities"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

type CombatantTestSuite struct {
	suite.Suite
}

func TestCombatantSuite(t *testing.T) {
	suite.Run(t, new(CombatantTestSuite))
}

func (s *CombatantTestSuite) newHero() *entities.Combatant {
	hero, err := entities.NewCombatant(&entities.CombatantConfig{
		ID:     "hero-1",
		Name:   "Hero",
		Kind:   entities.KindPlayer,
		Health: 100,
		Damage: 10,
	})
	s.Require().NoError(err)
	return hero
}

func (s *CombatantTestSuite) TestNewCombatantValidation() {
	testCases := []struct {
		name   string
		cfg    *entities.CombatantConfig
		errMsg string
	}{
		{
			name:   "nil config",
			cfg:    nil,
			errMsg: "config cannot be nil",
		},
		{
			name:   "missing name",
			cfg:    &entities.CombatantConfig{Kind: entities.KindPlayer, Health: 10},
			errMsg: "Name",
		},
		{
			name:   "zero health",
			cfg:    &entities.CombatantConfig{Name: "Hero", Kind: entities.KindPlayer},
			errMsg: "Health",
		},
		{
			name:   "unknown kind",
			cfg:    &entities.CombatantConfig{Name: "Hero", Kind: "dragon", Health: 10},
			errMsg: "Kind",
		},
		{
			name: "weapon is not a weapon",
			cfg: &entities.CombatantConfig{
				Name: "Hero", Kind: entities.KindPlayer, Health: 10,
				Weapon: entities.NewHealingPotion(),
			},
			errMsg: "Weapon",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, err := entities.NewCombatant(tc.cfg)
			s.Require().Error(err)
			s.Nil(c)
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *CombatantTestSuite) TestNewCombatantStartsAtFullHealth() {
	hero := s.newHero()
	s.Equal(100, hero.Health())
	s.Equal(100, hero.MaxHealth())
	s.Equal(1, hero.Level)
	s.Equal(0, hero.Experience)
	s.Equal("player", hero.GetType())
	s.Equal("hero-1", hero.GetID())
}

func (s *CombatantTestSuite) TestNewBoss() {
	boss, err := entities.NewBoss("boss-1", entities.BossGoblinKing)
	s.Require().NoError(err)

	s.True(boss.IsBoss())
	s.Equal(50, boss.Health())
	s.Equal(8, boss.Damage)
	s.Equal("Boss Weapon", boss.EquippedWeapon.Name)
	s.Equal(5, boss.WeaponBonus())
	s.Equal("Boss: Goblin King (Health: 50)", boss.String())
}

func (s *CombatantTestSuite) TestSetHealth() {
	hero := s.newHero()

	hero.SetHealth(-5)
	s.Equal(0, hero.Health())
	s.False(hero.IsAlive())

	hero.SetHealth(150)
	s.Equal(150, hero.Health(), "upper bound is not clamped")
}

func (s *CombatantTestSuite) TestHealIsCapped() {
	hero := s.newHero()
	hero.SetHealth(90)

	hero.Heal(50)
	s.Equal(100, hero.Health())

	hero.Heal(-10)
	s.Equal(100, hero.Health())
}

func (s *CombatantTestSuite) TestTakeDamage() {
	hero := s.newHero()

	s.Equal(30, hero.TakeDamage(30))
	s.Equal(70, hero.Health())

	s.Equal(0, hero.TakeDamage(-10))
	s.Equal(70, hero.Health())

	hero.TakeDamage(500)
	s.Equal(0, hero.Health())
}

func (s *CombatantTestSuite) TestIncreaseMaxHealth() {
	hero := s.newHero()
	hero.IncreaseMaxHealth(10)
	s.Equal(110, hero.MaxHealth())
	s.Equal(100, hero.Health())

	hero.RestoreHealth()
	s.Equal(110, hero.Health())
}

func (s *CombatantTestSuite) TestEquipWeapon() {
	hero := s.newHero()
	s.Equal(0, hero.WeaponBonus())

	s.False(hero.EquipWeapon(entities.NewHealingPotion()))
	s.True(hero.EquipWeapon(entities.WeaponAxe.Build()))
	s.Equal(7, hero.WeaponBonus())

	w := hero.UnequipWeapon()
	s.Equal("Axe", w.Name)
	s.Nil(hero.EquippedWeapon)
}

func (s *CombatantTestSuite) TestItemUse() {
	s.Run("weapon equips", func() {
		hero := s.newHero()
		bow := entities.WeaponBow.Build()
		s.NoError(bow.Use(hero))
		s.Equal(bow, hero.EquippedWeapon)
	})

	s.Run("potion heals", func() {
		hero := s.newHero()
		hero.SetHealth(10)
		s.NoError(entities.NewHealingPotion().Use(hero))
		s.Equal(30, hero.Health())
	})

	s.Run("armor is unsupported", func() {
		hero := s.newHero()
		armor := &entities.Item{Name: "Chain Mail", Type: entities.ItemTypeArmor}
		err := armor.Use(hero)
		s.Require().Error(err)
		s.True(errors.Is(err, entities.ErrUnsupportedItemType))
		s.True(errors.IsUnimplemented(err))
	})

	s.Run("potion without heal amount is unsupported", func() {
		hero := s.newHero()
		err := entities.NewPotion("Water", "Just water", 0).Use(hero)
		s.True(errors.IsUnimplemented(err))
	})
}

func (s *CombatantTestSuite) TestNewWeaponClampsBonus() {
	w := entities.NewWeapon("Stick", "Barely a weapon", -3, "")
	s.Equal(0, w.DamageBonus)
	s.Equal(entities.AttackTypePhysical, w.AttackType)
	s.Equal("Stick (+0 physical)", w.String())
}
