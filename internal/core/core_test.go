package core_test

import (
	"context"
	"errors"
	"fmt"
	"grocery/internal/core"
	"grocery/internal/core/fake"
	"grocery/internal/repository"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Grocer", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		grocer *core.Grocer

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		grocer = core.NewGrocer(fakeLogger, fakeRepo)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg  core.RegisterMessage
			user core.UserRecord
			err  error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Username: " alice ",
				Name:     "Alice",
				Password: "pw123",
			}
		})

		JustBeforeEach(func() {
			user, err = grocer.Register(ctx, msg)
		})

		When("the username is free", func() {
			It("should store a salted hash and never the plaintext", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))

				_, stored := fakeRepo.CreateUserArgsForCall(0)
				Expect(stored.Username).To(Equal("alice"))
				Expect(stored.Name).To(Equal("Alice"))
				Expect(stored.IsAdmin).To(BeFalse())
				Expect(stored.PasswordHash).NotTo(Equal(msg.Password))
				Expect(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw123"))).To(Succeed())
				Expect(uuid.Validate(stored.ID)).To(Succeed())

				Expect(user).To(Equal(core.UserRecord{ID: stored.ID, Username: "alice", Name: "Alice"}))
			})
		})

		When("no display name is given", func() {
			BeforeEach(func() {
				msg.Name = ""
			})

			It("should fall back to the username", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Name).To(Equal("alice"))
			})
		})

		When("the username already exists", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(fmt.Errorf("create user: %w", repository.ErrDuplicate))
			})

			It("should return ErrDuplicateUsername", func() {
				Expect(err).To(Equal(core.ErrDuplicateUsername))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("create user: fake error"))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			user           core.UserRecord
			err            error
			userId         string
			hashedPassword string
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			hash, hashErr := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())
			hashedPassword = string(hash)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			user, err = grocer.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(userId))
				Expect(user.Username).To(Equal("testuser"))

				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal("testuser"))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				authMsg.Password = "wrongpass"
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
			})

			It("should return ErrIncorrectPassword", func() {
				Expect(err).To(Equal(core.ErrIncorrectPassword))
				Expect(user).To(BeZero())
			})
		})

		When("user is not found", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(Equal(core.ErrUserNotFound))
			})
		})

		When("repository returns an unexpected error", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError("get user from db: fake error"))
			})
		})
	})

	Describe("UserByID", func() {
		When("the user was removed", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrUserNotFound", func() {
				_, err := grocer.UserByID(ctx, "gone")
				Expect(err).To(Equal(core.ErrUserNotFound))
			})
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{ID: "id-1", Username: "admin", IsAdmin: true}, nil)
			})

			It("should return the admin flag", func() {
				user, err := grocer.UserByID(ctx, "id-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(user.IsAdmin).To(BeTrue())
			})
		})
	})

	Describe("EnsureAdmin", func() {
		var (
			created bool
			err     error
		)

		JustBeforeEach(func() {
			created, err = grocer.EnsureAdmin(ctx, "admin", "admin")
		})

		When("an admin already exists", func() {
			BeforeEach(func() {
				fakeRepo.GetAdminReturns(repository.User{ID: "id-1", IsAdmin: true}, nil)
			})

			It("should not create another one", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("no admin exists", func() {
			BeforeEach(func() {
				fakeRepo.GetAdminReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should create the bootstrap admin", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeTrue())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, stored := fakeRepo.CreateUserArgsForCall(0)
				Expect(stored.Username).To(Equal("admin"))
				Expect(stored.IsAdmin).To(BeTrue())
				Expect(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("admin"))).To(Succeed())
			})
		})

		When("the admin lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetAdminReturns(repository.User{}, fakeErr)
			})

			It("should return an error without creating anything", func() {
				Expect(err).To(MatchError("look up admin: fake error"))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Categories", func() {
		BeforeEach(func() {
			fakeRepo.GetCategoriesReturns([]repository.Category{{ID: 1, Name: "Dairy"}, {ID: 2, Name: "Fruit"}}, nil)
		})

		It("should map categories to records", func() {
			categories, err := grocer.Categories(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(categories).To(Equal([]core.CategoryRecord{{ID: 1, Name: "Dairy"}, {ID: 2, Name: "Fruit"}}))
		})
	})

	Describe("Units", func() {
		BeforeEach(func() {
			fakeRepo.GetUnitsReturns([]repository.Unit{{ID: 1, Name: "piece"}, {ID: 2, Name: "kg"}}, nil)
		})

		It("should map units to records", func() {
			units, err := grocer.Units(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(units).To(Equal([]core.UnitRecord{{ID: 1, Name: "piece"}, {ID: 2, Name: "kg"}}))
		})
	})

	Describe("CategoryDetails", func() {
		When("the category exists", func() {
			BeforeEach(func() {
				fakeRepo.GetCategoryReturns(repository.Category{ID: 2, Name: "Dairy"}, nil)
				fakeRepo.GetCategoryProductsReturns([]repository.ProductListing{
					{ID: 5, Name: "Milk", PricePerUnit: 60, Quantity: 10, CategoryID: 2, UnitID: 3, UnitName: "litre"},
				}, nil)
			})

			It("should return the category with its products", func() {
				details, err := grocer.CategoryDetails(ctx, 2)
				Expect(err).NotTo(HaveOccurred())
				Expect(details.Category.Name).To(Equal("Dairy"))
				Expect(details.Products).To(ConsistOf(core.ProductRecord{
					ID: 5, Name: "Milk", PricePerUnit: 60, Quantity: 10, CategoryID: 2, UnitID: 3, UnitName: "litre",
				}))
			})
		})

		When("the category does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetCategoryReturns(repository.Category{}, fmt.Errorf("get category: %w", repository.ErrNotFound))
			})

			It("should return ErrCategoryNotFound", func() {
				_, err := grocer.CategoryDetails(ctx, 2)
				Expect(err).To(Equal(core.ErrCategoryNotFound))
				Expect(fakeRepo.GetCategoryProductsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("AddCategory", func() {
		When("the name is new", func() {
			BeforeEach(func() {
				fakeRepo.CreateCategoryStub = func(ctx context.Context, c *repository.Category) error {
					c.ID = 7
					return nil
				}
			})

			It("should persist and return the category", func() {
				category, err := grocer.AddCategory(ctx, "Dairy")
				Expect(err).NotTo(HaveOccurred())
				Expect(category).To(Equal(core.CategoryRecord{ID: 7, Name: "Dairy"}))
			})
		})

		When("the name is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateCategoryReturns(fmt.Errorf("create: %w", repository.ErrDuplicate))
			})

			It("should return ErrDuplicateCategory", func() {
				_, err := grocer.AddCategory(ctx, "Dairy")
				Expect(err).To(Equal(core.ErrDuplicateCategory))
			})
		})
	})

	Describe("EditCategory", func() {
		It("should translate a missing category", func() {
			fakeRepo.RenameCategoryReturns(fmt.Errorf("rename: %w", repository.ErrNotFound))
			Expect(grocer.EditCategory(ctx, 3, "Bakery")).To(Equal(core.ErrCategoryNotFound))
		})

		It("should translate a duplicate name", func() {
			fakeRepo.RenameCategoryReturns(fmt.Errorf("rename: %w", repository.ErrDuplicate))
			Expect(grocer.EditCategory(ctx, 3, "Bakery")).To(Equal(core.ErrDuplicateCategory))
		})

		It("should rename the category", func() {
			Expect(grocer.EditCategory(ctx, 3, " Bakery ")).To(Succeed())
			_, id, name := fakeRepo.RenameCategoryArgsForCall(0)
			Expect(id).To(Equal(uint(3)))
			Expect(name).To(Equal("Bakery"))
		})
	})

	Describe("DeleteCategory", func() {
		When("the category still has products", func() {
			BeforeEach(func() {
				fakeRepo.CountCategoryProductsReturns(2, nil)
			})

			It("should refuse the delete", func() {
				Expect(grocer.DeleteCategory(ctx, 3)).To(Equal(core.ErrCategoryNotEmpty))
				Expect(fakeRepo.DeleteCategoryCallCount()).To(Equal(0))
			})
		})

		When("the category does not exist", func() {
			BeforeEach(func() {
				fakeRepo.DeleteCategoryReturns(fmt.Errorf("delete: %w", repository.ErrNotFound))
			})

			It("should return ErrCategoryNotFound", func() {
				Expect(grocer.DeleteCategory(ctx, 3)).To(Equal(core.ErrCategoryNotFound))
			})
		})

		When("the category is empty", func() {
			It("should delete it", func() {
				Expect(grocer.DeleteCategory(ctx, 3)).To(Succeed())
				Expect(fakeRepo.DeleteCategoryCallCount()).To(Equal(1))
			})
		})
	})

	Describe("AddProduct", func() {
		var msg core.ProductMessage

		BeforeEach(func() {
			msg = core.ProductMessage{Name: "Milk", PricePerUnit: 60, Quantity: 10, CategoryID: 2}
		})

		When("the category exists", func() {
			BeforeEach(func() {
				fakeRepo.GetCategoryReturns(repository.Category{ID: 2, Name: "Dairy"}, nil)
			})

			It("should create the product with the default unit", func() {
				product, err := grocer.AddProduct(ctx, msg)
				Expect(err).NotTo(HaveOccurred())
				Expect(product.CategoryID).To(Equal(uint(2)))

				_, stored := fakeRepo.CreateProductArgsForCall(0)
				Expect(stored.UnitID).To(Equal(uint(1)))
				Expect(stored.PricePerUnit).To(Equal(60))
				Expect(stored.Quantity).To(Equal(10))
			})
		})

		When("the category does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetCategoryReturns(repository.Category{}, repository.ErrNotFound)
			})

			It("should not create anything", func() {
				_, err := grocer.AddProduct(ctx, msg)
				Expect(err).To(Equal(core.ErrCategoryNotFound))
				Expect(fakeRepo.CreateProductCallCount()).To(Equal(0))
			})
		})

		When("a unit is chosen", func() {
			BeforeEach(func() {
				fakeRepo.GetCategoryReturns(repository.Category{ID: 2, Name: "Dairy"}, nil)
				fakeRepo.GetUnitsReturns([]repository.Unit{{ID: 1, Name: "piece"}, {ID: 3, Name: "litre"}}, nil)
			})

			It("should store a known unit", func() {
				msg.UnitID = 3
				_, err := grocer.AddProduct(ctx, msg)
				Expect(err).NotTo(HaveOccurred())

				_, stored := fakeRepo.CreateProductArgsForCall(0)
				Expect(stored.UnitID).To(Equal(uint(3)))
			})

			It("should refuse an unknown unit before creating anything", func() {
				msg.UnitID = 99
				_, err := grocer.AddProduct(ctx, msg)
				Expect(err).To(Equal(core.ErrUnitNotFound))
				Expect(fakeRepo.CreateProductCallCount()).To(Equal(0))
			})

			It("should wrap a failing unit lookup", func() {
				msg.UnitID = 3
				fakeRepo.GetUnitsReturns(nil, errors.New("connection reset"))
				_, err := grocer.AddProduct(ctx, msg)
				Expect(err).To(MatchError(ContainSubstring("get units: connection reset")))
				Expect(fakeRepo.CreateProductCallCount()).To(Equal(0))
			})
		})

		When("the category is removed before the insert", func() {
			BeforeEach(func() {
				fakeRepo.GetCategoryReturns(repository.Category{ID: 2, Name: "Dairy"}, nil)
				fakeRepo.CreateProductReturns(fmt.Errorf("create: %w", repository.ErrInvalidReference))
			})

			It("should report the missing category", func() {
				_, err := grocer.AddProduct(ctx, msg)
				Expect(err).To(Equal(core.ErrCategoryNotFound))
			})
		})
	})

	Describe("EditProduct", func() {
		It("should report that it is not implemented", func() {
			err := grocer.EditProduct(ctx, 5, core.ProductMessage{Name: "Milk"})
			Expect(err).To(MatchError(core.ErrNotImplemented))
			Expect(fakeRepo.Invocations()).To(BeEmpty())
		})
	})

	Describe("Product and DeleteProduct", func() {
		It("should translate a missing product on lookup", func() {
			fakeRepo.GetProductReturns(repository.Product{}, fmt.Errorf("get: %w", repository.ErrNotFound))
			_, err := grocer.Product(ctx, 5)
			Expect(err).To(Equal(core.ErrProductNotFound))
		})

		It("should translate a missing product on delete", func() {
			fakeRepo.DeleteProductReturns(fmt.Errorf("delete: %w", repository.ErrNotFound))
			Expect(grocer.DeleteProduct(ctx, 5)).To(Equal(core.ErrProductNotFound))
		})

		It("should translate a product that is still ordered", func() {
			fakeRepo.DeleteProductReturns(fmt.Errorf("delete: %w", repository.ErrInUse))
			Expect(grocer.DeleteProduct(ctx, 5)).To(Equal(core.ErrProductInUse))
		})
	})
})
